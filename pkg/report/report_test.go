package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/report"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

func sampleTreeTable() *tally.Table {
	table := tally.NewTreeTable()
	table.AddBlob("py", 120, 10, 0)
	table.AddBlob("py", 2, 0, 2)
	table.AddBlob("other", 6, 1, 0)

	return table
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "csv", "json", "yaml"} {
		format, err := report.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, report.Format(name), format)
	}

	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "git-line-totals.csv", report.FileName(report.FormatCSV))
	assert.Equal(t, "git-line-totals.json", report.FileName(report.FormatJSON))
	assert.Equal(t, "git-line-totals.yaml", report.FileName(report.FormatYAML))
	assert.Empty(t, report.FileName(report.FormatTable))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := report.WriteCSV(&buf, sampleTreeTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "group,files,lines,blanks,bytes", lines[0])

	// Rows ascending by lines, total last.
	assert.Equal(t, "other,1,1,0,6", lines[1])
	assert.Equal(t, "py,2,10,2,122", lines[2])
	assert.Equal(t, "total,3,11,2,128", lines[3])
}

func TestJSONRoundTrip(t *testing.T) {
	table := sampleTreeTable()

	var buf bytes.Buffer

	err := report.WriteJSON(&buf, table)
	require.NoError(t, err)

	var decoded map[string]map[string]int64

	err = json.Unmarshal(buf.Bytes(), &decoded)
	require.NoError(t, err)

	assert.Equal(t, table.AsMap(), decoded)
}

func TestYAMLRoundTrip(t *testing.T) {
	table := sampleTreeTable()

	var buf bytes.Buffer

	err := report.WriteYAML(&buf, table)
	require.NoError(t, err)

	var decoded map[string]map[string]int64

	err = yaml.Unmarshal(buf.Bytes(), &decoded)
	require.NoError(t, err)

	assert.Equal(t, table.AsMap(), decoded)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer

	report.RenderTable(&buf, sampleTreeTable())

	out := buf.String()
	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "LINES")
	assert.Contains(t, out, "py")
	assert.Contains(t, out, "other")
	assert.Contains(t, out, "total")
}

func TestSaveWritesFormatDerivedFile(t *testing.T) {
	dir := t.TempDir()

	path, err := report.Save(dir, report.FormatJSON, sampleTreeTable())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "git-line-totals.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"py\"")
}

func TestSaveRejectsTableFormat(t *testing.T) {
	_, err := report.Save(t.TempDir(), report.FormatTable, sampleTreeTable())
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}
