package main

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/internal/runner"
	"github.com/vango-dev/jsx/pkg/wire"
)

func transformCmd(g *globals) *cobra.Command {
	var (
		format string
		outDir string
		indent bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "transform <file>...",
		Short: "Transform tree documents into vnode snapshots",
		Long: `Transform JSON or YAML element descriptions into snabbdom vnode
snapshots. Files are processed concurrently. Without --out the snapshots
are written to stdout in argument order.

Examples:
  vango-jsx transform page.json
  vango-jsx transform -f msgpack -o dist pages/*.yaml
  vango-jsx transform --watch page.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			logger := g.logger(cfg)

			if format == "" {
				format = cfg.Output.Format
			}
			codec, err := wire.Lookup(format)
			if err != nil {
				return err
			}
			if indent || cfg.Output.Indent {
				codec = wire.WithIndent(codec, "  ")
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}

			opts := runner.Options{Codec: codec, OutDir: outDir, Logger: logger}
			out := cmd.OutOrStdout()

			results, err := runner.TransformFiles(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			for _, res := range results {
				if err := report(out, res); err != nil {
					return err
				}
			}
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runner.Watch(ctx, args, opts, func(res runner.Result, err error) {
				if err != nil {
					errors.PrintError(err)
					return
				}
				if err := report(out, res); err != nil {
					logger.Error("write failed", "error", err)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, msgpack or binary (default from config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: stdout)")
	cmd.Flags().BoolVar(&indent, "indent", false, "Pretty-print JSON output")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run when a file changes")

	return cmd
}

// report writes the snapshot to out, or a success line when it went to a
// file.
func report(out io.Writer, res runner.Result) error {
	if res.Output != "" {
		success("%s → %s (%d nodes)", res.Input, res.Output, res.Nodes)
		return nil
	}
	if _, err := out.Write(res.Data); err != nil {
		return errors.New("E180").WithDetail(err.Error()).Wrap(err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return errors.New("E180").WithDetail(err.Error()).Wrap(err)
	}
	return nil
}

