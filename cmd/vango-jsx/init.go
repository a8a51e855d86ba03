package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/jsx/internal/config"
	"github.com/vango-dev/jsx/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		yamlFile bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default config file",
		Long: `Write jsx.json (or jsx.yaml with --yaml) with the default settings.

Examples:
  vango-jsx init
  vango-jsx init --yaml ./site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			name := config.FileNames[0]
			if yamlFile {
				name = config.FileNames[1]
			}
			if config.Exists(dir) && !force {
				return errors.New("E180").
					WithDetail("a config file already exists in " + dir).
					WithSuggestion("Pass --force to overwrite it")
			}
			path := filepath.Join(dir, name)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yamlFile, "yaml", false, "Write jsx.yaml instead of jsx.json")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	return cmd
}
