package dataset

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// document is the on-disk dataset layout. JSON documents are read through
// the YAML decoder, which keeps mapping key order for rows.
type document struct {
	Columns  []string         `yaml:"columns"`
	Metadata []ColumnMetadata `yaml:"metadata"`
	Rows     []yaml.Node      `yaml:"rows"`
}

// Decode reads a dataset document. Date strings are resolved in loc (UTC when nil).
func Decode(r io.Reader, loc *time.Location) (Dataset, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil, nil, nil), nil
		}
		return Dataset{}, errors.Wrap(err, "failed to decode dataset")
	}

	index := NewMetadataIndex(doc.Metadata)
	rows := make([]Row, 0, len(doc.Rows))
	for i := range doc.Rows {
		node := &doc.Rows[i]
		if node.Kind != yaml.MappingNode {
			return Dataset{}, &DecodeError{Row: i, Err: errors.Errorf("expected mapping, got %s", node.Tag)}
		}
		row := make(Row, 0, len(node.Content)/2)
		for j := 0; j+1 < len(node.Content); j += 2 {
			column := node.Content[j].Value
			var raw any
			if err := node.Content[j+1].Decode(&raw); err != nil {
				return Dataset{}, &DecodeError{Row: i, Column: column, Err: err}
			}
			row = append(row, Cell{Column: column, Value: Resolve(raw, index.Get(column), loc)})
		}
		rows = append(rows, row)
	}
	return New(doc.Columns, rows, doc.Metadata), nil
}

// LoadFile reads a .yml, .yaml or .json dataset document from disk.
func LoadFile(path string, loc *time.Location) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
	default:
		return Dataset{}, errors.Wrapf(ErrUnsupportedFile, "%s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "failed to open dataset %s", path)
	}
	defer f.Close()
	ds, err := Decode(f, loc)
	if err != nil {
		return Dataset{}, errors.Wrapf(err, "failed to load dataset %s", path)
	}
	return ds, nil
}
