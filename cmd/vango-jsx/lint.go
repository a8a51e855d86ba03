package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/internal/runner"
)

func lintCmd(g *globals) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "lint <file>...",
		Short: "Report deprecated property aliases",
		Long: `Report legacy property aliases (class, on, hook, ...) used in tree
documents, with the spelling that replaces them. Keys listed in
lint.ignore are skipped.

Examples:
  vango-jsx lint page.json
  vango-jsx lint --strict pages/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			logger := g.logger(cfg)

			findings, err := runner.LintFiles(args, cfg.Lint.Ignore)
			if err != nil {
				return err
			}
			for _, f := range findings {
				logger.Warn("deprecated alias",
					"file", f.File,
					"path", f.Path,
					"key", f.Key,
					"use", f.Use,
				)
			}

			if len(findings) == 0 {
				success("No deprecated aliases in %d file(s)", len(args))
				return nil
			}
			if strict || cfg.Lint.FailOnDeprecated {
				return errors.New("E181").WithDetail(fmt.Sprintf("%d finding(s)", len(findings)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when anything is reported")

	return cmd
}
