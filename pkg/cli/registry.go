package cli

import (
	"fmt"
	"strings"

	"github.com/ioscli/ioscli/pkg/clock"
)

// Handler executes a command. args holds the tokens after the command name,
// ctx is the mutable session state, and clk is the optional device clock
// (nil when clock functionality is unavailable). Handlers validate their
// input and return descriptive errors; they never panic.
type Handler func(args []string, ctx *Context, clk *clock.Clock) error

// Command is an immutable descriptor for one invocable command. Name is the
// canonical invocation string and may contain embedded spaces
// ("configure terminal"). Suggestions, when set, lists literal completion
// strings emitted for this command by '?' help.
type Command struct {
	Name        string
	Description string
	Suggestions []string
	Run         Handler
}

// Registry maps canonical command names to their descriptors.
type Registry map[string]Command

// BuildRegistry constructs the full command set. It is pure and
// deterministic and is called once at startup. The registry performs no
// mode gating itself; each handler checks ctx.Mode and rejects invocations
// from disallowed modes.
func BuildRegistry() Registry {
	reg := Registry{}
	add := func(cmd Command) {
		reg[cmd.Name] = cmd
	}

	add(Command{
		Name:        "enable",
		Description: "Enter privileged EXEC mode",
		Suggestions: []string{"enable"},
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != UserMode {
				return fmt.Errorf("%w: 'enable' is only available in user EXEC mode", ErrWrongMode)
			}
			if len(args) != 0 {
				return fmt.Errorf("%w: 'enable' does not accept additional arguments", ErrInvalidArgument)
			}
			ctx.SetMode(Mode{Kind: PrivilegedMode})
			fmt.Fprintln(ctx.Out, "Entering privileged EXEC mode")
			return nil
		},
	})

	add(Command{
		Name:        "disable",
		Description: "Return to user EXEC mode",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != PrivilegedMode {
				return fmt.Errorf("%w: 'disable' is only available in privileged EXEC mode", ErrWrongMode)
			}
			if len(args) != 0 {
				return fmt.Errorf("%w: 'disable' does not accept additional arguments", ErrInvalidArgument)
			}
			ctx.SetMode(Mode{Kind: UserMode})
			fmt.Fprintln(ctx.Out, "Returning to user EXEC mode")
			return nil
		},
	})

	add(Command{
		Name:        "configure terminal",
		Description: "Enter global configuration mode",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != PrivilegedMode {
				return fmt.Errorf("%w: 'configure terminal' is only available in privileged EXEC mode", ErrWrongMode)
			}
			if len(args) != 0 {
				return fmt.Errorf("%w: 'configure terminal' does not accept additional arguments", ErrInvalidArgument)
			}
			ctx.SetMode(Mode{Kind: ConfigMode})
			fmt.Fprintln(ctx.Out, "Entering global configuration mode")
			return nil
		},
	})

	add(Command{
		Name:        "interface",
		Description: "Enter interface configuration mode",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != ConfigMode {
				return fmt.Errorf("%w: 'interface' is only available in global configuration mode", ErrWrongMode)
			}
			if len(args) == 0 {
				return fmt.Errorf("%w: specify an interface, e.g. 'interface g0/0'", ErrMissingArgument)
			}
			name := strings.Join(args, " ")
			ctx.SetMode(Mode{Kind: InterfaceMode, Interface: name})
			fmt.Fprintf(ctx.Out, "Entering interface configuration mode for %s\n", name)
			return nil
		},
	})

	add(Command{
		Name:        "hostname",
		Description: "Set the device hostname",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != ConfigMode {
				return fmt.Errorf("%w: 'hostname' is only available in global configuration mode", ErrWrongMode)
			}
			if len(args) == 0 {
				return fmt.Errorf("%w: usage: hostname <new-hostname>", ErrMissingArgument)
			}
			ctx.SetHostname(args[0])
			fmt.Fprintf(ctx.Out, "Hostname changed to '%s'\n", args[0])
			return nil
		},
	})

	add(Command{
		Name:        "help",
		Description: "Display available commands",
		Run: func(_ []string, ctx *Context, _ *clock.Clock) error {
			fmt.Fprintln(ctx.Out, "Available commands:")
			fmt.Fprintln(ctx.Out, "  enable                       Enter privileged EXEC mode")
			fmt.Fprintln(ctx.Out, "  disable                      Return to user EXEC mode")
			fmt.Fprintln(ctx.Out, "  configure terminal           Enter global configuration mode")
			fmt.Fprintln(ctx.Out, "  interface <name>             Enter interface configuration mode")
			fmt.Fprintln(ctx.Out, "  hostname <name>              Set the device hostname")
			fmt.Fprintln(ctx.Out, "  ifconfig [iface ip up]       Display or configure interfaces")
			fmt.Fprintln(ctx.Out, "  ip address <ip> <mask>       Assign an address to the selected interface")
			fmt.Fprintln(ctx.Out, "  shutdown / no shutdown       Set interface administrative status")
			fmt.Fprintln(ctx.Out, "  show running-config          Display the running configuration")
			fmt.Fprintln(ctx.Out, "  show startup-config          Display the startup configuration")
			fmt.Fprintln(ctx.Out, "  show interfaces              Display interface status")
			fmt.Fprintln(ctx.Out, "  show clock                   Display the device clock")
			fmt.Fprintln(ctx.Out, "  show version                 Display the software version")
			fmt.Fprintln(ctx.Out, "  clock set <time> <date>      Set the device clock")
			fmt.Fprintln(ctx.Out, "  write memory                 Save the running configuration")
			fmt.Fprintln(ctx.Out, "  exit                         Leave the current mode")
			fmt.Fprintln(ctx.Out, "  exit cli                     Quit and discard history")
			return nil
		},
	})

	add(Command{
		Name:        "show version",
		Description: "Display the software version",
		Run: func(_ []string, ctx *Context, _ *clock.Clock) error {
			fmt.Fprintln(ctx.Out, "Software Version: IOS 15.2(3)T emulation")
			fmt.Fprintln(ctx.Out, "Compiled on: 2024-12-01")
			return nil
		},
	})

	registerConfigCommands(add)
	registerNetCommands(add)
	registerClockCommands(add)

	return reg
}
