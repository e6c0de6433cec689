package cli

import (
	"fmt"
	"net/netip"

	"github.com/ioscli/ioscli/pkg/clock"
	"github.com/ioscli/ioscli/pkg/netstate"
)

// registerNetCommands adds the commands operating on the in-memory
// interface table.
func registerNetCommands(add func(Command)) {
	add(Command{
		Name:        "ifconfig",
		Description: "Display or configure network interfaces",
		Run:         cmdIfconfig,
	})

	add(Command{
		Name:        "ip address",
		Description: "Assign an IP address to the selected interface",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != InterfaceMode {
				return fmt.Errorf("%w: 'ip address' is only available in interface configuration mode", ErrWrongMode)
			}
			if len(args) < 2 {
				return fmt.Errorf("%w: usage: ip address <ip> <netmask>", ErrMissingArgument)
			}
			addr, err := parseIPv4(args[0])
			if err != nil {
				return err
			}
			mask, err := parseIPv4(args[1])
			if err != nil {
				return err
			}
			prefix, err := netstate.PrefixFromMask(mask)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			entry := ctx.Net.Assign(ctx.Mode.Interface, addr, prefix)
			fmt.Fprintf(ctx.Out, "Interface %s assigned %s/%d (broadcast %s)\n",
				ctx.Mode.Interface, entry.Addr, entry.Prefix, entry.Broadcast)
			return nil
		},
	})

	add(Command{
		Name:        "shutdown",
		Description: "Administratively disable the selected interface",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			return setAdminStatus(args, ctx, false)
		},
	})

	add(Command{
		Name:        "no shutdown",
		Description: "Administratively enable the selected interface",
		Run: func(args []string, ctx *Context, _ *clock.Clock) error {
			return setAdminStatus(args, ctx, true)
		},
	})

	add(Command{
		Name:        "show interfaces",
		Description: "Display interface status",
		Run: func(_ []string, ctx *Context, _ *clock.Clock) error {
			if ctx.Mode.Kind != PrivilegedMode {
				return fmt.Errorf("%w: 'show interfaces' is only available in privileged EXEC mode", ErrWrongMode)
			}
			names := ctx.Net.Names()
			if len(names) == 0 {
				fmt.Fprintln(ctx.Out, "No interfaces found.")
				return nil
			}
			for _, name := range names {
				entry, _ := ctx.Net.Get(name)
				status := "administratively down"
				if entry.Up {
					status = "up"
				}
				fmt.Fprintf(ctx.Out, "%s is %s, line protocol is %s\n", name, status, status)
				if entry.Addr.IsValid() {
					fmt.Fprintf(ctx.Out, "  Internet address is %s/%d, broadcast %s\n",
						entry.Addr, entry.Prefix, entry.Broadcast)
				}
			}
			return nil
		},
	})
}

// cmdIfconfig mirrors the classic ifconfig surface: no arguments lists the
// table, "<iface> <ip> up" inserts or updates an entry. New interfaces get
// a /24 broadcast derived from the address; updates keep the existing
// broadcast.
func cmdIfconfig(args []string, ctx *Context, _ *clock.Clock) error {
	switch {
	case len(args) == 0:
		names := ctx.Net.Names()
		if len(names) == 0 {
			fmt.Fprintln(ctx.Out, "No interfaces found.")
			return nil
		}
		for _, name := range names {
			entry, _ := ctx.Net.Get(name)
			printIfconfigEntry(ctx, name, entry)
		}
		return nil

	case len(args) == 3 && args[2] == "up":
		addr, err := parseIPv4(args[1])
		if err != nil {
			return err
		}
		entry, created := ctx.Net.Upsert(args[0], addr)
		if created {
			fmt.Fprintf(ctx.Out, "Created new interface %s\n", args[0])
		} else {
			fmt.Fprintf(ctx.Out, "Updated %s\n", args[0])
		}
		printIfconfigEntry(ctx, args[0], entry)
		return nil

	default:
		return fmt.Errorf("%w: usage: ifconfig [<interface> <ip> up]", ErrInvalidArgument)
	}
}

func setAdminStatus(args []string, ctx *Context, up bool) error {
	if ctx.Mode.Kind != InterfaceMode {
		return fmt.Errorf("%w: 'shutdown' and 'no shutdown' are only available in interface configuration mode", ErrWrongMode)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: this command does not accept additional arguments", ErrInvalidArgument)
	}
	ctx.Net.SetAdmin(ctx.Mode.Interface, up)
	if up {
		fmt.Fprintf(ctx.Out, "%%LINK-3-UPDOWN: Interface %s, changed state to up\n", ctx.Mode.Interface)
	} else {
		fmt.Fprintf(ctx.Out, "%%LINK-5-CHANGED: Interface %s, changed state to administratively down\n", ctx.Mode.Interface)
	}
	return nil
}

func printIfconfigEntry(ctx *Context, name string, entry netstate.Entry) {
	fmt.Fprintf(ctx.Out, "%s: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500\n", name)
	fmt.Fprintf(ctx.Out, "    inet %s  netmask %s  broadcast %s\n",
		entry.Addr, netstate.MaskString(entry.Prefix), entry.Broadcast)
	fmt.Fprintln(ctx.Out, "    ether 00:0c:29:16:30:92  txqueuelen 1000  (Ethernet)")
}

func parseIPv4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: invalid IPv4 address %q", ErrInvalidArgument, s)
	}
	return addr, nil
}
