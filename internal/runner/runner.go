// Package runner transforms and lints tree documents on disk for the CLI.
package runner

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/pkg/tree"
	"github.com/vango-dev/jsx/pkg/vnode"
	"github.com/vango-dev/jsx/pkg/wire"
)

// Options control a transform run.
type Options struct {
	// Codec encodes the snapshots. Nil means wire.JSON.
	Codec wire.Codec

	// OutDir receives one output file per input. Empty keeps the encoded
	// bytes in Result.Data instead.
	OutDir string

	// Builder resolves component tags. Nil builds without components.
	Builder *tree.Builder

	// Concurrency bounds parallel transforms. Zero means GOMAXPROCS.
	Concurrency int

	Logger *slog.Logger
}

func (o *Options) codec() wire.Codec {
	if o.Codec == nil {
		return wire.JSON
	}
	return o.Codec
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Result is the outcome of transforming one file.
type Result struct {
	Input  string
	Output string // empty when OutDir is unset
	Data   []byte // nil when written to Output
	Nodes  int
}

// Extension returns the output file extension for a format.
func Extension(format string) string {
	switch format {
	case "msgpack":
		return ".vnode.msgpack"
	case "binary":
		return ".vnode.bin"
	}
	return ".vnode.json"
}

// OutputPath is where TransformFile writes the output for input.
func OutputPath(outDir, input, format string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+Extension(format))
}

// TransformFile parses, builds and encodes one document.
func TransformFile(path string, opts Options) (Result, error) {
	res := Result{Input: path}

	doc, err := tree.ParseFile(path)
	if err != nil {
		return res, err
	}
	b := opts.Builder
	if b == nil {
		b = &tree.Builder{}
	}
	node, err := b.Build(doc)
	if err != nil {
		return res, withFile(err, path)
	}
	codec := opts.codec()
	data, err := wire.Encode(codec, node)
	if err != nil {
		return res, err
	}
	res.Nodes = countNodes(node)

	if opts.OutDir == "" {
		res.Data = data
		return res, nil
	}
	res.Output = OutputPath(opts.OutDir, path, codec.Format())
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return res, errors.New("E180").WithDetail(err.Error()).Wrap(err)
	}
	if err := os.WriteFile(res.Output, data, 0o644); err != nil {
		return res, errors.New("E180").WithDetail(err.Error()).Wrap(err)
	}
	return res, nil
}

// TransformFiles transforms paths concurrently. Results keep the order of
// paths. The first error cancels the remaining work and is returned.
func TransformFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := TransformFile(path, opts)
			if err != nil {
				return err
			}
			opts.logger().Debug("transformed", "input", path, "output", res.Output, "nodes", res.Nodes)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// withFile prefixes the detail of a build error with the document path.
func withFile(err error, path string) error {
	if e, ok := err.(*errors.Error); ok {
		if e.Detail == "" {
			e.Detail = path
		} else {
			e.Detail = path + ": " + e.Detail
		}
	}
	return err
}

func countNodes(v *vnode.VNode) int {
	n := 0
	v.Walk(func(*vnode.VNode) bool {
		n++
		return true
	})
	return n
}
