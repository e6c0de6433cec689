package cli

import (
	"fmt"
	"strings"

	"github.com/ioscli/ioscli/pkg/clock"
)

// Resolve maps trimmed input text to exactly one command plus its argument
// tokens. Because command names may contain spaces, resolution picks the
// longest registered name that is a literal prefix of the input
// (longest-prefix-match). The remainder is split on whitespace; empty input
// yields an empty token list, never empty strings.
func Resolve(reg Registry, input string) (Command, []string, error) {
	in := strings.TrimSpace(input)

	var best string
	found := false
	for name := range reg {
		if !strings.HasPrefix(in, name) {
			continue
		}
		if !found || len(name) > len(best) {
			best = name
			found = true
		}
	}
	if !found {
		return Command{}, nil, fmt.Errorf("%w: %s", ErrUnknownCommand, in)
	}

	rest := strings.TrimSpace(in[len(best):])
	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}
	return reg[best], args, nil
}

// Dispatch resolves input and invokes the matched handler. A successful
// handler is acknowledged on ctx.Out; handler errors are returned verbatim
// for the caller to render. Dispatch never terminates the REPL on a
// command failure.
func Dispatch(reg Registry, input string, ctx *Context, clk *clock.Clock) error {
	cmd, args, err := Resolve(reg, input)
	if err != nil {
		return err
	}
	if err := cmd.Run(args, ctx, clk); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Command '%s' executed successfully.\n", cmd.Name)
	return nil
}
