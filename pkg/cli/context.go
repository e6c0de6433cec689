package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ioscli/ioscli/pkg/configstore"
	"github.com/ioscli/ioscli/pkg/netstate"
)

// ModeKind identifies the privilege/configuration level of the CLI.
type ModeKind int

const (
	UserMode ModeKind = iota
	PrivilegedMode
	ConfigMode
	InterfaceMode
)

// Mode is the current mode together with its payload. Interface is set
// only when Kind is InterfaceMode and names the selected interface.
type Mode struct {
	Kind      ModeKind
	Interface string
}

func (m Mode) String() string {
	switch m.Kind {
	case UserMode:
		return "user EXEC"
	case PrivilegedMode:
		return "privileged EXEC"
	case ConfigMode:
		return "global configuration"
	case InterfaceMode:
		return fmt.Sprintf("interface configuration (%s)", m.Interface)
	default:
		return fmt.Sprintf("unknown(%d)", int(m.Kind))
	}
}

// Context is the mutable state threaded through every command invocation.
// It is owned exclusively by the REPL loop; handlers receive it by pointer
// and are never invoked concurrently.
type Context struct {
	Mode   Mode
	Prompt string
	Config configstore.Config
	Net    *netstate.Table
	Store  *configstore.Store
	Out    io.Writer
}

// NewContext creates a Context in user EXEC mode with the prompt derived
// from the configured hostname.
func NewContext(cfg configstore.Config, store *configstore.Store, net *netstate.Table) *Context {
	ctx := &Context{
		Mode:   Mode{Kind: UserMode},
		Config: cfg,
		Net:    net,
		Store:  store,
		Out:    os.Stdout,
	}
	ctx.RefreshPrompt()
	return ctx
}

// SetMode changes the current mode and recomputes the prompt.
func (c *Context) SetMode(m Mode) {
	c.Mode = m
	c.RefreshPrompt()
}

// SetHostname changes the hostname and recomputes the prompt for the
// current mode.
func (c *Context) SetHostname(name string) {
	c.Config.Hostname = name
	c.RefreshPrompt()
}

// RefreshPrompt derives the prompt from (hostname, mode). It must run after
// every hostname or mode mutation so the prompt invariant holds before the
// next read.
func (c *Context) RefreshPrompt() {
	h := c.Config.Hostname
	switch c.Mode.Kind {
	case UserMode:
		c.Prompt = h + ">"
	case PrivilegedMode:
		c.Prompt = h + "#"
	case ConfigMode:
		c.Prompt = h + "(config)#"
	case InterfaceMode:
		c.Prompt = fmt.Sprintf("%s(config-if)# %s", h, c.Mode.Interface)
	}
}
