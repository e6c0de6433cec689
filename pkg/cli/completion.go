package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Complete produces next-token help for input ending in '?'. The trailing
// '?' and surrounding whitespace are stripped to obtain the prefix; the
// registry is filtered to commands whose name starts with the prefix and
// that are listed in the mode's completion allow-set. Each surviving
// command contributes its second whitespace-delimited token once the user
// is past the first token (the prefix contains a space, or the command's
// first token extends the typed prefix), otherwise its first token.
func Complete(reg Registry, mode Mode, input string) []string {
	prefix := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(input), "?"))

	seen := map[string]bool{}
	var out []string
	emit := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for name, cmd := range reg {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if !completionAllowed(mode, name) {
			continue
		}
		if len(cmd.Suggestions) > 0 {
			for _, s := range cmd.Suggestions {
				emit(s)
			}
			continue
		}
		emit(nextToken(name, prefix))
	}
	sort.Strings(out)
	return out
}

// completionAllowed applies the mode-specific allow-set. Interface mode
// offers no completions.
func completionAllowed(mode Mode, name string) bool {
	switch mode.Kind {
	case UserMode:
		return name == "enable"
	case PrivilegedMode:
		return name == "configure terminal" || name == "help" || name == "write memory" ||
			strings.HasPrefix(name, "show") || strings.HasPrefix(name, "ifconfig")
	case ConfigMode:
		return name == "hostname" || name == "interface" || name == "help" || name == "write memory" ||
			strings.HasPrefix(name, "ifconfig")
	default:
		return false
	}
}

// nextToken picks which token of a command name to surface for the typed
// prefix. Once the user has started (or finished) the first token, the
// second token is the useful continuation; a bare prefix still lists first
// tokens.
func nextToken(name, prefix string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	first := fields[0]
	pastFirst := strings.Contains(prefix, " ") ||
		(prefix != "" && strings.HasPrefix(first, prefix))
	if pastFirst && len(fields) > 1 {
		return fields[1]
	}
	return first
}

// WriteCompletions renders completion candidates one per line, or a
// no-matches notice when the set is empty.
func WriteCompletions(w io.Writer, prefix string, candidates []string) {
	if len(candidates) == 0 {
		fmt.Fprintf(w, "No matching commands found for '%s?'\n", prefix)
		return
	}
	fmt.Fprintln(w, "Possible completions:")
	for _, c := range candidates {
		fmt.Fprintf(w, "  %s\n", c)
	}
}
