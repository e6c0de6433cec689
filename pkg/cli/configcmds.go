package cli

import (
	"fmt"
	"sort"

	"github.com/ioscli/ioscli/pkg/clock"
)

// registerConfigCommands adds the commands that read or persist the
// configuration aggregate.
func registerConfigCommands(add func(Command)) {
	add(Command{
		Name:        "write memory",
		Description: "Save the running configuration to the startup configuration",
		Run: func(_ []string, ctx *Context, _ *clock.Clock) error {
			startup := make(map[string]string, len(ctx.Config.RunningConfig))
			for k, v := range ctx.Config.RunningConfig {
				startup[k] = v
			}
			// Persist first so a failed save leaves the in-memory
			// startup config untouched.
			next := ctx.Config
			next.StartupConfig = startup
			if err := ctx.Store.Save(&next); err != nil {
				return fmt.Errorf("%w: %v", ErrPersistence, err)
			}
			ctx.Config.StartupConfig = startup
			fmt.Fprintln(ctx.Out, "Configuration saved successfully.")
			return nil
		},
	})

	add(Command{
		Name:        "show running-config",
		Description: "Display the current running configuration",
		Run: func(_ []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != PrivilegedMode {
				return fmt.Errorf("%w: 'show running-config' is only available in privileged EXEC mode", ErrWrongMode)
			}
			data, err := ctx.Store.Raw()
			if err != nil {
				return fmt.Errorf("%w: reading %s: %v", ErrPersistence, ctx.Store.Path(), err)
			}
			fmt.Fprintln(ctx.Out, "Building configuration...")
			fmt.Fprintln(ctx.Out, string(data))
			return nil
		},
	})

	add(Command{
		Name:        "show startup-config",
		Description: "Display the startup configuration",
		Run: func(_ []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != PrivilegedMode {
				return fmt.Errorf("%w: 'show startup-config' is only available in privileged EXEC mode", ErrWrongMode)
			}
			fmt.Fprintf(ctx.Out, "hostname %s\n", ctx.Config.Hostname)
			keys := make([]string, 0, len(ctx.Config.StartupConfig))
			for k := range ctx.Config.StartupConfig {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(ctx.Out, "%s %s\n", k, ctx.Config.StartupConfig[k])
			}
			return nil
		},
	})
}
