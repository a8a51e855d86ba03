package runner

import (
	"github.com/vango-dev/jsx/pkg/tree"
)

// Finding is a lint finding in a file.
type Finding struct {
	File string
	tree.Finding
}

// LintFiles reports deprecated aliases in every file, skipping the keys in
// ignore. It stops at the first file that cannot be parsed.
func LintFiles(paths []string, ignore []string) ([]Finding, error) {
	skip := make(map[string]bool, len(ignore))
	for _, k := range ignore {
		skip[k] = true
	}

	var out []Finding
	for _, path := range paths {
		doc, err := tree.ParseFile(path)
		if err != nil {
			return nil, err
		}
		for _, f := range tree.Lint(doc) {
			if !skip[f.Key] {
				out = append(out, Finding{File: path, Finding: f})
			}
		}
	}
	return out, nil
}
