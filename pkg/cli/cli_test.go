package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Slach/chartfmt/pkg/types"
)

const revenueDoc = `
metadata:
  - {columnName: id, dataType: Number, hidden: true}
  - {columnName: revenue, dataType: Currency, currencyType: USD}
rows:
  - {id: 1, region: north, revenue: 1500000}
  - {id: 2, region: south, revenue: 250000}
`

const salesDoc = `{"rows": [
  {"month": "Jan", "sales": 1200000, "costs": 5000},
  {"month": "Feb", "sales": 800000, "costs": 3000}
]}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	root := NewRootCommand(&types.CLI{}, "test")
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTableCommand(t *testing.T) {
	input := writeFile(t, "revenue.yml", revenueDoc)

	out, err := run(t, "table", "--input", input, "--border", "none")
	require.NoError(t, err)
	assert.Equal(t, "region  revenue\n------  -------\nnorth     $1.5M\nsouth     $0.3M\n", out)

	out, err = run(t, "table", "--input", input, "--border", "none", "--significant-digits=false", "--sort-by", "revenue")
	require.NoError(t, err)
	assert.Equal(t, "region  revenue\n------  ----------\nsouth     $250,000\nnorth   $1,500,000\n", out)
}

func TestFormatCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{args: []string{"format", "1234567"}, want: "1.2M\n"},
		{args: []string{"format", "1234567", "--significant-digits=false"}, want: "1,234,567\n"},
		{args: []string{"format", "45.5", "--type", "percentage"}, want: "45.5%\n"},
		{args: []string{"format", "250000", "--type", "currency", "--currency", "EUR", "--scope", "1000000"}, want: "€0.3M\n"},
		{args: []string{"format", "--type", "currency", "--", "-1500"}, want: "-$1.5K\n"},
		{args: []string{"format", "", "--type", "text"}, want: "-\n"},
		{args: []string{"format", "1234567", "--locale", "de-DE", "--significant-digits=false"}, want: "1.234.567\n"},
	} {
		out, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}

	_, err := run(t, "format", "1", "--type", "money")
	assert.Error(t, err)
}

func TestWidthCommand(t *testing.T) {
	input := writeFile(t, "sales.json", salesDoc)

	out, err := run(t, "width", "--input", input, "--width", "200")
	require.NoError(t, err)
	assert.Equal(t, "width: 20.42%\nscroll: false\ncontainer: 100.00%\naxis padding: 120px\nx axis: category\n", out)

	out, err = run(t, "width", "--input", input, "--width", "200", "--mobile", "--preview")
	require.NoError(t, err)
	assert.Contains(t, out, "width: 40.83%\n")
	assert.Contains(t, out, "axis padding: 20px\n")
}

func TestChartCommand(t *testing.T) {
	input := writeFile(t, "sales.json", salesDoc)

	out, err := run(t, "chart", "--input", input, "--width", "40", "--hide", "sales")
	require.NoError(t, err)
	assert.Contains(t, out, "· sales")
	assert.Contains(t, out, " 5K\n")
	assert.Contains(t, out, " 3K\n")
	assert.NotContains(t, out, "1.2M")

	out, err = run(t, "chart", "--input", input, "--width", "40", "--stacked")
	require.NoError(t, err)
	assert.Contains(t, out, " 1.2M\n")
}

func TestMetricCommand(t *testing.T) {
	out, err := run(t, "metric", "1234567", "45.5", "--title", "users", "--title", "rate")
	require.NoError(t, err)
	assert.Equal(t, "users  rate\n1.2M   45.5\n\n", out)

	input := writeFile(t, "revenue.yml", revenueDoc)
	out, err = run(t, "metric", "--input", input)
	require.NoError(t, err)
	assert.Equal(t, "revenue\n$1.5M\n\n", out)
}

func TestMissingSource(t *testing.T) {
	_, err := run(t, "table")
	assert.ErrorContains(t, err, "either --input or --query is required")

	_, err = run(t, "table", "--input", writeFile(t, "data.csv", "a,b"))
	assert.Error(t, err)
}

func TestQueryWithoutContext(t *testing.T) {
	_, err := run(t, "table", "--query", "SELECT 1")
	assert.ErrorContains(t, err, "no contexts configured")
}

func TestEchoQuery(t *testing.T) {
	a := &app{cli: &types.CLI{Query: "  SELECT count() FROM system.parts \n", NoColor: true}}
	var buf bytes.Buffer
	a.echoQuery(&buf)
	assert.Equal(t, "SELECT count() FROM system.parts\n", buf.String())
}
