package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ioscli/ioscli/pkg/clock"
)

// registerClockCommands adds the commands backed by the optional device
// clock. A nil clock makes both fail with ErrUnavailable.
func registerClockCommands(add func(Command)) {
	add(Command{
		Name:        "clock set",
		Description: "Set the device clock date and time",
		Run: func(args []string, ctx *Context, clk *clock.Clock) error {
			if clk == nil {
				return fmt.Errorf("%w: clock functionality is unavailable", ErrUnavailable)
			}
			if len(args) < 4 {
				return fmt.Errorf("%w: usage: clock set <hh:mm:ss> <day> <month> <year>", ErrMissingArgument)
			}
			if err := clk.SetTime(args[0]); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: invalid day %q", ErrInvalidArgument, args[1])
			}
			year, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("%w: invalid year %q", ErrInvalidArgument, args[3])
			}
			if err := clk.SetDate(day, args[2], year); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			fmt.Fprintf(ctx.Out, "Clock set to: %s\n", clk)
			return nil
		},
	})

	add(Command{
		Name:        "show clock",
		Description: "Display the device clock",
		Run: func(_ []string, ctx *Context, clk *clock.Clock) error {
			if ctx.Mode.Kind != PrivilegedMode {
				return fmt.Errorf("%w: 'show clock' is only available in privileged EXEC mode", ErrWrongMode)
			}
			if clk == nil {
				return fmt.Errorf("%w: clock functionality is unavailable", ErrUnavailable)
			}
			fmt.Fprintf(ctx.Out, "%s\n", clk)
			fmt.Fprintf(ctx.Out, "Uptime: %s\n", clk.Uptime().Round(time.Second))
			return nil
		},
	})
}
