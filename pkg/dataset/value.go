package dataset

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	default:
		return "null"
	}
}

// Value is a single raw dataset scalar.
type Value struct {
	kind Kind
	num  float64
	text string
	date time.Time
}

func Null() Value                 { return Value{} }
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }
func TextValue(s string) Value    { return Value{kind: KindText, text: s} }
func DateValue(t time.Time) Value { return Value{kind: KindDate, date: t} }
func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsNull() bool      { return v.kind == KindNull }

// Float returns the finite numeric reading of v. Text values are parsed the
// way a spreadsheet would read a numeric cell; dates and nulls never are.
func (v Value) Float() (float64, bool) {
	var f float64
	switch v.kind {
	case KindNumber:
		f = v.num
	case KindText:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Text returns the text payload; empty for other kinds.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

func (v Value) Time() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

// String is the unformatted representation, used for sorting ties and sizing.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindDate:
		return v.date.Format(time.RFC3339)
	default:
		return ""
	}
}

// Of converts a decoded scalar into a Value without consulting metadata.
func Of(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case float64:
		return NumberValue(x)
	case float32:
		return NumberValue(float64(x))
	case int:
		return NumberValue(float64(x))
	case int8:
		return NumberValue(float64(x))
	case int16:
		return NumberValue(float64(x))
	case int32:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case uint:
		return NumberValue(float64(x))
	case uint8:
		return NumberValue(float64(x))
	case uint16:
		return NumberValue(float64(x))
	case uint32:
		return NumberValue(float64(x))
	case uint64:
		return NumberValue(float64(x))
	case string:
		return TextValue(x)
	case []byte:
		return TextValue(string(x))
	case bool:
		return TextValue(strconv.FormatBool(x))
	case time.Time:
		return DateValue(x)
	case fmt.Stringer:
		return TextValue(x.String())
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null()
		}
		return Of(rv.Elem().Interface())
	}
	return TextValue(fmt.Sprint(raw))
}

// Resolve converts a decoded scalar using the column's declared type. Strings
// in Date columns are parsed in loc, numeric strings in numeric columns become
// numbers, and Text columns keep everything as text. Undeclared columns (md ==
// nil) keep the natural variant of the raw value.
func Resolve(raw any, md *ColumnMetadata, loc *time.Location) Value {
	v := Of(raw)
	if md == nil || v.IsNull() {
		return v
	}
	switch {
	case md.DataType == Date:
		if v.kind == KindText {
			if loc == nil {
				loc = time.UTC
			}
			if t, err := dateparse.ParseIn(strings.TrimSpace(v.text), loc); err == nil {
				return DateValue(t)
			}
		}
	case md.DataType.Numeric():
		if v.kind == KindText {
			if f, ok := v.Float(); ok {
				return NumberValue(f)
			}
		}
	case md.DataType == Text:
		if v.kind != KindText {
			return TextValue(v.String())
		}
	}
	return v
}
