package pipeline

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/graph"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
)

// Formats lists the supported export formats.
var Formats = []string{FormatJSON, FormatCSV, FormatTSV}

// ValidateFormat checks that format is a supported export format.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatCSV, FormatTSV:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q (must be one of: json, csv, tsv)", format)
}

// Export serializes a layout. JSON carries the full layout document; CSV
// and TSV carry one "id,x,y" row per node.
func Export(l graph.Layout, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return graph.MarshalLayout(l)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if format == FormatTSV {
		w.Comma = '\t'
	}
	if err := w.Write([]string{"id", "x", "y"}); err != nil {
		return nil, err
	}
	for _, p := range l.Positions {
		row := []string{
			string(p.ID),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
