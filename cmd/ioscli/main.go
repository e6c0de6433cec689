// ioscli is an interactive Cisco-IOS-style CLI emulator.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ioscli/ioscli/pkg/cli"
	"github.com/ioscli/ioscli/pkg/clock"
	"github.com/ioscli/ioscli/pkg/configstore"
	"github.com/ioscli/ioscli/pkg/logging"
	"github.com/ioscli/ioscli/pkg/netstate"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ioscli",
	Short: "Interactive IOS-style CLI emulator",
	Long: `ioscli emulates the command-line interface of a Cisco-IOS-style
network device: a mode-sensitive REPL with user EXEC, privileged EXEC,
global configuration, and interface configuration modes.

Configuration is persisted as JSON; the emulated interface table and the
device clock live in memory only.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler := logging.NewCompactHandler(os.Stderr, logging.ParseLevel(viper.GetString("log-level")))
		handler.SetRing(logging.NewRing(200))
		logger := slog.New(handler)

		store := configstore.New(viper.GetString("config"))
		cfg, err := store.Load()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("no saved configuration, starting with defaults", "path", store.Path())
			} else {
				logger.Warn("configuration load failed, using defaults", "path", store.Path(), "err", err)
			}
		}

		ctx := cli.NewContext(cfg, store, netstate.Seeded())
		c := cli.New(ctx, clock.New(), viper.GetString("history-file"), logger)
		return c.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ioscli %s\n", version)
		cmd.Printf("commit: %s\n", commit)
		cmd.Printf("built: %s\n", date)
		cmd.Printf("go: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "startup-config.json", "path of the persisted configuration file")
	rootCmd.PersistentFlags().String("history-file", "history.txt", "path of the readline history file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.SetEnvPrefix("IOSCLI")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	// Optional settings file; flags and env win over it.
	if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigName(".ioscli")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(home)
		_ = viper.ReadInConfig()
	}

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
