package dataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	t.Parallel()
	name := "x"
	var nilPtr *string
	ts := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		raw  any
		kind Kind
	}{
		{"nil", nil, KindNull},
		{"int", 42, KindNumber},
		{"uint64", uint64(7), KindNumber},
		{"float32", float32(1.5), KindNumber},
		{"string", "Jan", KindText},
		{"bytes", []byte("abc"), KindText},
		{"bool", true, KindText},
		{"time", ts, KindDate},
		{"pointer", &name, KindText},
		{"nil pointer", nilPtr, KindNull},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, Of(tc.raw).Kind())
		})
	}
}

func TestValueFloat(t *testing.T) {
	t.Parallel()

	f, ok := NumberValue(12.5).Float()
	require.True(t, ok)
	assert.Equal(t, 12.5, f)

	f, ok = TextValue(" 1200 ").Float()
	require.True(t, ok)
	assert.Equal(t, 1200.0, f)

	_, ok = TextValue("Jan").Float()
	assert.False(t, ok)

	_, ok = NumberValue(math.NaN()).Float()
	assert.False(t, ok)

	_, ok = NumberValue(math.Inf(-1)).Float()
	assert.False(t, ok)

	_, ok = Null().Float()
	assert.False(t, ok)

	_, ok = DateValue(time.Now()).Float()
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	date := &ColumnMetadata{ColumnName: "day", DataType: Date}
	v := Resolve("2024-01-15", date, nil)
	require.Equal(t, KindDate, v.Kind())
	got, _ := v.Time()
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)

	assert.Equal(t, KindText, Resolve("not a date", date, nil).Kind())

	money := &ColumnMetadata{ColumnName: "sales", DataType: Currency}
	v = Resolve("1200.50", money, nil)
	require.Equal(t, KindNumber, v.Kind())
	f, _ := v.Float()
	assert.Equal(t, 1200.5, f)

	label := &ColumnMetadata{ColumnName: "year", DataType: Text}
	v = Resolve(2024, label, nil)
	assert.Equal(t, KindText, v.Kind())
	assert.Equal(t, "2024", v.Text())

	assert.Equal(t, KindNumber, Resolve(10, nil, nil).Kind())
	assert.True(t, Resolve(nil, money, nil).IsNull())
}

func TestValueString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1200000", NumberValue(1200000).String())
	assert.Equal(t, "0.25", NumberValue(0.25).String())
	assert.Equal(t, "", Null().String())
	assert.Equal(t, "Jan", TextValue("Jan").String())
}
