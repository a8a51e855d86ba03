package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/jsx/pkg/playground"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP playground",
		Long: `Start the HTTP playground. POST a document to /v1/transform and get
the snapshot back; Prometheus metrics are served on /metrics.

Examples:
  vango-jsx serve
  vango-jsx serve --port=9000 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if err := cfg.Serve.Validate(); err != nil {
				return err
			}

			srv := playground.New(cfg, playground.WithLogger(g.logger(cfg)))
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}
