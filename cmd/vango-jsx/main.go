package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsx/internal/config"
	"github.com/vango-dev/jsx/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
	logJSON    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "vango-jsx",
		Short: "Build snabbdom virtual nodes from JSX-shaped documents",
		Long: `vango-jsx turns element descriptions written in JSON or YAML into
snabbdom-compatible virtual node snapshots.

  • transform: documents to json, msgpack or binary snapshots
  • lint:      report deprecated property aliases
  • serve:     HTTP playground with metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (default: jsx.json or jsx.yaml in this or a parent directory)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "Log as JSON")

	rootCmd.AddCommand(
		transformCmd(g),
		lintCmd(g),
		serveCmd(g),
		initCmd(),
		versionCmd(),
	)
	return rootCmd
}

// load reads the config named by --config, or the project config, or the
// defaults.
func (g *globals) load() (*config.Config, error) {
	if g.configPath != "" {
		return config.LoadFile(g.configPath)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadOrDefault(wd)
}

// logger builds the stderr logger for cfg, honoring --log-level and
// --log-json.
func (g *globals) logger(cfg *config.Config) *slog.Logger {
	level := cfg.SlogLevel()
	if g.logLevel != "" {
		if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
			level = cfg.SlogLevel()
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if g.logJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
