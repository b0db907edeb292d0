package dataset

import "strings"

// DataType is the declared type of a dataset column.
type DataType string

const (
	Text       DataType = "Text"
	Number     DataType = "Number"
	Date       DataType = "Date"
	Currency   DataType = "Currency"
	Percentage DataType = "Percentage"
)

// Numeric reports whether values of this type take part in magnitude scans.
func (t DataType) Numeric() bool {
	return t == Number || t == Currency || t == Percentage
}

// ParseDataType matches a type name case-insensitively.
func ParseDataType(s string) (DataType, bool) {
	for _, t := range []DataType{Text, Number, Date, Currency, Percentage} {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// ColumnMetadata describes how a single column is typed and displayed.
type ColumnMetadata struct {
	ColumnName   string   `yaml:"columnName" json:"columnName"`
	DataType     DataType `yaml:"dataType" json:"dataType"`
	Hidden       bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	CurrencyType string   `yaml:"currencyType,omitempty" json:"currencyType,omitempty"`
}

// MetadataIndex is a read-only lookup from column name to its metadata.
// The zero value is an empty index.
type MetadataIndex struct {
	order  []ColumnMetadata
	byName map[string]int
}

// NewMetadataIndex builds an index. When a column name is declared twice the
// first declaration wins.
func NewMetadataIndex(columns []ColumnMetadata) MetadataIndex {
	idx := MetadataIndex{byName: make(map[string]int, len(columns))}
	for _, cm := range columns {
		if _, dup := idx.byName[cm.ColumnName]; dup {
			continue
		}
		idx.byName[cm.ColumnName] = len(idx.order)
		idx.order = append(idx.order, cm)
	}
	return idx
}

// Lookup returns the metadata declared for column.
func (m MetadataIndex) Lookup(column string) (ColumnMetadata, bool) {
	i, ok := m.byName[column]
	if !ok {
		return ColumnMetadata{}, false
	}
	return m.order[i], true
}

// Get returns a copy of the declared metadata, or nil for undeclared columns.
func (m MetadataIndex) Get(column string) *ColumnMetadata {
	cm, ok := m.Lookup(column)
	if !ok {
		return nil
	}
	return &cm
}

// Type returns the declared data type, Number when undeclared.
func (m MetadataIndex) Type(column string) DataType {
	if cm, ok := m.Lookup(column); ok && cm.DataType != "" {
		return cm.DataType
	}
	return Number
}

// IsHidden reports whether the metadata marks column as hidden.
func (m MetadataIndex) IsHidden(column string) bool {
	cm, ok := m.Lookup(column)
	return ok && cm.Hidden
}

// Columns returns the declarations in declaration order.
func (m MetadataIndex) Columns() []ColumnMetadata {
	out := make([]ColumnMetadata, len(m.order))
	copy(out, m.order)
	return out
}

func (m MetadataIndex) Len() int { return len(m.order) }
