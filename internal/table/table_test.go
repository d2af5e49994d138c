package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNew_TrimsHeaderOnly(t *testing.T) {
	tbl := New([][]string{
		{"\ufeff Client ", "Balance  "},
		{" Smith ", " $10 "},
	})
	assert.Equal(t, []string{"Client", "Balance"}, tbl.Header)
	assert.Equal(t, []string{" Smith ", " $10 "}, tbl.Rows[0])
}

func TestNew_Empty(t *testing.T) {
	tbl := New(nil)
	assert.Empty(t, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestIndex(t *testing.T) {
	tbl := New([][]string{{"A", "B"}})
	i, ok := tbl.Index("B")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = tbl.Index("C")
	assert.False(t, ok)
}

func TestCell_ShortRow(t *testing.T) {
	assert.Equal(t, "x", Cell([]string{"x"}, 0))
	assert.Equal(t, "", Cell([]string{"x"}, 3))
	assert.Equal(t, "", Cell(nil, -1))
}

func TestCSVReader_RaggedRows(t *testing.T) {
	tbl, err := CSVReader{}.Read(strings.NewReader("Client,Account,Client Balance\nA,Trust,\"$1,000.00\"\nB\n"))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "$1,000.00", tbl.Rows[0][2])
	assert.Len(t, tbl.Rows[1], 1)
}

func TestCSVReader_Malformed(t *testing.T) {
	_, err := CSVReader{}.Read(strings.NewReader("a,\"b\nc"))
	assert.Error(t, err)
}

func TestXLSXReader(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Client", "Account", "Client Balance"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Smith", "IOLTA", "$25.00"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	tbl, err := XLSXReader{}.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Client", "Account", "Client Balance"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Smith", tbl.Rows[0][0])
	assert.Equal(t, "$25.00", tbl.Rows[0][2])
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("CSV"))
	assert.NotNil(t, r.Get("xlsx"))
	assert.Nil(t, r.Get("pdf"))

	assert.Panics(t, func() { r.Register(CSVReader{}) })
}

func TestRegistry_Open(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "listing.csv")
	require.NoError(t, os.WriteFile(path, []byte("Client\nSmith\n"), 0o644))

	tbl, err := DefaultRegistry().Open(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Smith"}}, tbl.Rows)

	_, err = DefaultRegistry().Open(filepath.Join(dir, "listing.pdf"))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = DefaultRegistry().Open(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	tbl := New([][]string{{"A", "B"}, {"1", "x,y"}})
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))
	assert.Equal(t, "A,B\n1,\"x,y\"\n", buf.String())
}
