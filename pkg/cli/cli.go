// Package cli implements the IOS-style interactive command line: the mode
// state machine, the command registry, the longest-prefix dispatcher, and
// the readline REPL loop that ties them together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/ioscli/ioscli/pkg/clock"
)

// CLI is the interactive command-line interface. One REPL iteration reads
// one line, dispatches at most one command to completion, then renders
// output; the Context is owned exclusively by this loop.
type CLI struct {
	rl          *readline.Instance
	registry    Registry
	ctx         *Context
	clk         *clock.Clock
	historyFile string
	log         *slog.Logger

	// interrupted records ^C intent; the loop applies the mode reset at
	// the top of the next iteration rather than mutating Context from the
	// interrupt path.
	interrupted atomic.Bool
}

// New creates a CLI around an existing Context. clk may be nil, in which
// case clock commands report the feature as unavailable.
func New(ctx *Context, clk *clock.Clock, historyFile string, log *slog.Logger) *CLI {
	if log == nil {
		log = slog.Default()
	}
	return &CLI{
		registry:    BuildRegistry(),
		ctx:         ctx,
		clk:         clk,
		historyFile: historyFile,
		log:         log,
	}
}

// Run starts the interactive loop. It returns nil on a clean exit and an
// error only for unrecoverable input-stream failures; command errors are
// rendered and the loop continues.
func (c *CLI) Run() error {
	var err error
	c.rl, err = readline.NewEx(&readline.Config{
		Prompt:          c.ctx.Prompt,
		HistoryFile:     c.historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer c.rl.Close()

	fmt.Fprintln(c.ctx.Out, "IOS-style CLI emulator")
	fmt.Fprintln(c.ctx.Out, "Type 'help' for commands, '?' for completions")
	fmt.Fprintln(c.ctx.Out)
	c.log.Debug("cli started", "hostname", c.ctx.Config.Hostname, "history", c.historyFile)

	for {
		if c.interrupted.Swap(false) {
			c.applyInterrupt()
		}
		c.rl.SetPrompt(c.ctx.Prompt)

		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			c.interrupted.Store(true)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit cli" {
			if c.historyFile != "" {
				if rmErr := os.Remove(c.historyFile); rmErr != nil && !os.IsNotExist(rmErr) {
					c.log.Warn("discarding history failed", "file", c.historyFile, "err", rmErr)
				}
			}
			fmt.Fprintln(c.ctx.Out, "Exiting CLI.")
			return nil
		}

		if line == "exit" {
			c.exitMode()
			continue
		}

		if strings.HasSuffix(line, "?") {
			prefix := strings.TrimSpace(strings.TrimSuffix(line, "?"))
			WriteCompletions(c.ctx.Out, prefix, Complete(c.registry, c.ctx.Mode, line))
			continue
		}

		if err := Dispatch(c.registry, line, c.ctx, c.clk); err != nil {
			fmt.Fprintf(c.ctx.Out, "Error: %v\n", err)
		}
	}
}

// exitMode walks one mode up, mirroring the IOS 'exit' behavior.
func (c *CLI) exitMode() {
	switch c.ctx.Mode.Kind {
	case InterfaceMode:
		c.ctx.SetMode(Mode{Kind: ConfigMode})
		fmt.Fprintln(c.ctx.Out, "Exiting interface configuration mode.")
	case ConfigMode:
		c.ctx.SetMode(Mode{Kind: PrivilegedMode})
		fmt.Fprintln(c.ctx.Out, "Exiting global configuration mode.")
	case PrivilegedMode:
		c.ctx.SetMode(Mode{Kind: UserMode})
		fmt.Fprintln(c.ctx.Out, "Exiting privileged EXEC mode.")
	case UserMode:
		fmt.Fprintln(c.ctx.Out, "Already at the top level.")
	}
}

// applyInterrupt performs the out-of-band mode reset recorded by ^C: any
// mode above user EXEC falls back to privileged EXEC with the selected
// interface cleared. In user EXEC the interrupt only echoes.
func (c *CLI) applyInterrupt() {
	if c.ctx.Mode.Kind == UserMode {
		fmt.Fprintln(c.ctx.Out, "^C")
		return
	}
	c.ctx.SetMode(Mode{Kind: PrivilegedMode})
	fmt.Fprintln(c.ctx.Out, "^C")
	fmt.Fprintln(c.ctx.Out, "Returning to privileged EXEC mode.")
}
