package xlsxcodec_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtable/table"
	"github.com/katalvlaran/lvtable/xlsxcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func people() *table.Table {
	return table.New().
		AddColumnTitles("id", "name", "city").
		AddRow("1", "ann", "oslo").
		AddRow("2", "bob", "rome")
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxcodec.Encode(&buf, people()))

	back, err := xlsxcodec.Decode(&buf, nil)
	require.NoError(t, err)
	assert.True(t, people().Equal(back), back.String())
}

func TestEncodeLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxcodec.Encode(&buf, people(), xlsxcodec.WithSheet("people")))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"people"}, f.GetSheetList())
	rows, err := f.GetRows("people")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "name", "city"},
		{"1", "ann", "oslo"},
		{"2", "bob", "rome"},
	}, rows)
}

func TestDecodeNamedSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxcodec.Encode(&buf, people(), xlsxcodec.WithSheet("data")))
	data := buf.Bytes()

	tb, err := xlsxcodec.Decode(bytes.NewReader(data), []xlsxcodec.Option{xlsxcodec.WithSheet("data")})
	require.NoError(t, err)
	assert.Equal(t, 2, tb.RowCount())

	_, err = xlsxcodec.Decode(bytes.NewReader(data), []xlsxcodec.Option{xlsxcodec.WithSheet("other")})
	require.ErrorIs(t, err, xlsxcodec.ErrSheetNotFound)
}

func TestWithoutHeader(t *testing.T) {
	var buf bytes.Buffer
	src := people()
	require.NoError(t, xlsxcodec.Encode(&buf, src, xlsxcodec.WithoutHeader()))

	tb, err := xlsxcodec.Decode(&buf, []xlsxcodec.Option{xlsxcodec.WithoutHeader()})
	require.NoError(t, err)
	assert.Empty(t, tb.ColumnTitles())
	require.Equal(t, 2, tb.RowCount())
	r, err := tb.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "bob", "rome"}, r.Strings())
}

func TestEncodeUntitledTable(t *testing.T) {
	var buf bytes.Buffer
	src := table.New().AddRow("a", "b").AddRow("c", "d")
	require.NoError(t, xlsxcodec.Encode(&buf, src))

	tb, err := xlsxcodec.Decode(&buf, []xlsxcodec.Option{xlsxcodec.WithoutHeader()})
	require.NoError(t, err)
	assert.True(t, src.Equal(tb))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := xlsxcodec.Decode(strings.NewReader("not a workbook"), nil)
	require.ErrorIs(t, err, xlsxcodec.ErrWorkbook)
}

func TestWithSheetPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { xlsxcodec.WithSheet("") })
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, xlsxcodec.EncodeFile(path, people()))

	tb, err := xlsxcodec.DecodeFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "city"}, tb.ColumnTitles())

	_, err = xlsxcodec.DecodeFile(filepath.Join(t.TempDir(), "none.xlsx"), nil)
	require.Error(t, err)
}

func TestDecodeRepeatedHeader(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"id", "id", "name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"1", "2", "ann"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	tb, err := xlsxcodec.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tb.ColumnTitles())
	assert.Equal(t, []string{"2", "ann"}, tb.Rows()[0].Strings())
}
