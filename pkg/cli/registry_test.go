package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ioscli/ioscli/pkg/clock"
	"github.com/ioscli/ioscli/pkg/configstore"
)

// TestRegistryWellFormed guards the longest-prefix-match contract: no
// registered name may be a prefix of another at a token boundary, otherwise
// dispatch would have an undefined tie-break.
func TestRegistryWellFormed(t *testing.T) {
	reg := BuildRegistry()
	for a := range reg {
		for b := range reg {
			if a == b {
				continue
			}
			assert.False(t, strings.HasPrefix(b, a+" "),
				"registry name %q is a token-boundary prefix of %q", a, b)
		}
	}
	for name, cmd := range reg {
		assert.Equal(t, name, cmd.Name, "registry key must equal command name")
		require.NotNil(t, cmd.Run, "command %q has no handler", name)
	}
}

func TestEnableTransition(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)

	// Extra arguments are rejected without a mode change.
	err := Dispatch(reg, "enable now", ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, UserMode, ctx.Mode.Kind)

	require.NoError(t, Dispatch(reg, "enable", ctx, nil))
	assert.Equal(t, PrivilegedMode, ctx.Mode.Kind)
	assert.Equal(t, "Router#", ctx.Prompt)

	// enable is user EXEC only.
	err = Dispatch(reg, "enable", ctx, nil)
	assert.ErrorIs(t, err, ErrWrongMode)
}

func TestConfigureTerminalTransition(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)

	err := Dispatch(reg, "configure terminal", ctx, nil)
	assert.ErrorIs(t, err, ErrWrongMode)

	ctx.SetMode(Mode{Kind: PrivilegedMode})
	require.NoError(t, Dispatch(reg, "configure terminal", ctx, nil))
	assert.Equal(t, ConfigMode, ctx.Mode.Kind)
	assert.Equal(t, "Router(config)#", ctx.Prompt)
}

func TestInterfaceTransition(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)
	ctx.SetMode(Mode{Kind: ConfigMode})

	err := Dispatch(reg, "interface", ctx, nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Equal(t, ConfigMode, ctx.Mode.Kind)

	require.NoError(t, Dispatch(reg, "interface g0/0", ctx, nil))
	assert.Equal(t, InterfaceMode, ctx.Mode.Kind)
	assert.Equal(t, "g0/0", ctx.Mode.Interface)
	assert.Equal(t, "Router(config-if)# g0/0", ctx.Prompt)
}

func TestHostnameUpdatesPromptAtomically(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)

	// Illegal outside configuration mode, and state stays untouched.
	err := Dispatch(reg, "hostname Switch", ctx, nil)
	assert.ErrorIs(t, err, ErrWrongMode)
	assert.Equal(t, "Router", ctx.Config.Hostname)
	assert.Equal(t, "Router>", ctx.Prompt)

	ctx.SetMode(Mode{Kind: ConfigMode})
	require.NoError(t, Dispatch(reg, "hostname Switch", ctx, nil))
	assert.Equal(t, "Switch", ctx.Config.Hostname)
	assert.Equal(t, "Switch(config)#", ctx.Prompt)

	err = Dispatch(reg, "hostname", ctx, nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestIfconfigInsertAndUpdate(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)

	require.NoError(t, Dispatch(reg, "ifconfig eth1 10.0.0.5 up", ctx, nil))
	entry, ok := ctx.Net.Get("eth1")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", entry.Addr.String())
	assert.Equal(t, "10.0.0.255", entry.Broadcast.String())
	assert.True(t, entry.Up)

	// Re-running with a different address updates in place; broadcast is kept.
	require.NoError(t, Dispatch(reg, "ifconfig eth1 10.0.0.9 up", ctx, nil))
	entry, ok = ctx.Net.Get("eth1")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.9", entry.Addr.String())
	assert.Equal(t, "10.0.0.255", entry.Broadcast.String())

	err := Dispatch(reg, "ifconfig eth1 not-an-ip up", ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = Dispatch(reg, "ifconfig eth1 10.0.0.5 down", ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestClockCommands(t *testing.T) {
	reg := BuildRegistry()
	ctx, out := newTestContext(t)
	ctx.SetMode(Mode{Kind: PrivilegedMode})

	// Without a clock both commands report the feature as unavailable.
	err := Dispatch(reg, "show clock", ctx, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	err = Dispatch(reg, "clock set 12:30:45 15 January 2025", ctx, nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	clk := clock.New()
	require.NoError(t, Dispatch(reg, "clock set 12:30:45 15 January 2025", ctx, clk))

	out.Reset()
	require.NoError(t, Dispatch(reg, "show clock", ctx, clk))
	assert.Contains(t, out.String(), "12:30:45 January 15 2025")

	err = Dispatch(reg, "clock set 12:30:45", ctx, clk)
	assert.ErrorIs(t, err, ErrMissingArgument)
	err = Dispatch(reg, "clock set 25:00:00 15 January 2025", ctx, clk)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWriteMemoryPersists(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)
	ctx.Config.RunningConfig["ip route 0.0.0.0/0"] = "192.168.253.1"

	require.NoError(t, Dispatch(reg, "write memory", ctx, nil))
	assert.Equal(t, ctx.Config.RunningConfig, ctx.Config.StartupConfig)

	saved, err := ctx.Store.Load()
	require.NoError(t, err)
	assert.Equal(t, "192.168.253.1", saved.StartupConfig["ip route 0.0.0.0/0"])
}

func TestWriteMemorySaveFailureKeepsStartupConfig(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)
	// Point the store into a directory that does not exist so Save fails.
	ctx.Store = configstore.New(filepath.Join(t.TempDir(), "missing-dir", "startup-config.json"))
	ctx.Config.RunningConfig["ip route 0.0.0.0/0"] = "192.168.253.1"

	err := Dispatch(reg, "write memory", ctx, nil)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Empty(t, ctx.Config.StartupConfig,
		"a failed save must not leave a half-applied startup config")
}

func TestShowRunningConfigGatingAndContent(t *testing.T) {
	reg := BuildRegistry()
	ctx, out := newTestContext(t)

	err := Dispatch(reg, "show running-config", ctx, nil)
	assert.ErrorIs(t, err, ErrWrongMode)

	ctx.SetMode(Mode{Kind: PrivilegedMode})

	// No persisted file yet.
	err = Dispatch(reg, "show running-config", ctx, nil)
	assert.ErrorIs(t, err, ErrPersistence)

	require.NoError(t, Dispatch(reg, "write memory", ctx, nil))
	out.Reset()
	require.NoError(t, Dispatch(reg, "show running-config", ctx, nil))
	assert.Contains(t, out.String(), "Building configuration...")
	assert.Contains(t, out.String(), `"hostname": "Router"`)
}

func TestInterfaceModeAdminCommands(t *testing.T) {
	reg := BuildRegistry()
	ctx, _ := newTestContext(t)

	err := Dispatch(reg, "no shutdown", ctx, nil)
	assert.ErrorIs(t, err, ErrWrongMode)

	ctx.SetMode(Mode{Kind: InterfaceMode, Interface: "ens33"})
	require.NoError(t, Dispatch(reg, "no shutdown", ctx, nil))
	entry, _ := ctx.Net.Get("ens33")
	assert.True(t, entry.Up)

	require.NoError(t, Dispatch(reg, "shutdown", ctx, nil))
	entry, _ = ctx.Net.Get("ens33")
	assert.False(t, entry.Up)

	require.NoError(t, Dispatch(reg, "ip address 10.1.2.3 255.255.0.0", ctx, nil))
	entry, _ = ctx.Net.Get("ens33")
	assert.Equal(t, "10.1.2.3", entry.Addr.String())
	assert.Equal(t, 16, entry.Prefix)
	assert.Equal(t, "10.1.255.255", entry.Broadcast.String())

	err = Dispatch(reg, "ip address 10.1.2.3", ctx, nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

func TestDefaultConfigHostname(t *testing.T) {
	cfg := configstore.DefaultConfig()
	assert.Equal(t, "Router", cfg.Hostname)
	assert.Empty(t, cfg.RunningConfig)
	assert.Empty(t, cfg.StartupConfig)
}
