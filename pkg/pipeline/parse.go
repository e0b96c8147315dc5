package pipeline

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/nodescape/pkg/core/layout"
	"github.com/matzehuels/nodescape/pkg/core/synth"
	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
)

// Parse decodes a JSON graph. Decoding failures carry INVALID_FORMAT.
func Parse(r io.Reader) (*graph.Graph, error) {
	g, err := graph.ReadGraph(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid graph JSON")
	}
	return g, nil
}

// ParseFile reads a JSON graph from path, or from stdin when path is "-".
func ParseFile(path string) (*graph.Graph, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Synthesize generates a demo graph of n nodes from seed.
func Synthesize(n int, seed uint64, opts synth.Options) (*graph.Graph, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "node count must not be negative: %d", n)
	}
	if seed == 0 {
		seed = DefaultSeed
	}
	return synth.NewGenerator(layout.NewRand(seed)).Generate(n, opts), nil
}
