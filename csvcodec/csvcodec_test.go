package csvcodec_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtable/csvcodec"
	"github.com/katalvlaran/lvtable/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *table.Table {
	return table.New().
		AddColumnTitles("c1", "c2", "c3").
		AddRow("1.0", "2.0", "3.0")
}

func TestEncodeDefaultFormat(t *testing.T) {
	got, err := csvcodec.EncodeString(sample(), csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, "c1;c2;c3\r\n1.0;2.0;3.0\r\n", got)
}

func TestEncodeAbsentCellsAsEmptyFields(t *testing.T) {
	tb := table.New().AddColumnTitles("a", "b").AddRowValues(table.Null, table.Of("x"))
	got, err := csvcodec.EncodeString(tb, csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, "a;b\r\n;x\r\n", got)
}

func TestEncodeWithoutTitles(t *testing.T) {
	tb := table.New().AddRow("a", "b").AddRow("c")
	f := csvcodec.Format{Delimiter: ',', Header: true}
	got, err := csvcodec.EncodeString(tb, f)
	require.NoError(t, err)
	assert.Equal(t, "a,b\nc,\n", got)
}

func TestEncodeQuotesDelimiter(t *testing.T) {
	tb := table.New().AddColumnTitle("v").AddRow("a;b")
	got, err := csvcodec.EncodeString(tb, csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, "v\r\n\"a;b\"\r\n", got)
}

func TestRoundTrip(t *testing.T) {
	src := table.New().
		AddColumnTitles("id", "name", "note").
		AddRow("1", "ann", "x").
		AddRow("2", "bob", "y")

	text, err := csvcodec.EncodeString(src, csvcodec.DefaultFormat())
	require.NoError(t, err)
	back, err := csvcodec.DecodeString(text, csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.True(t, src.Equal(back), back.String())
}

func TestDecodeHeaderOnly(t *testing.T) {
	tb, err := csvcodec.DecodeString("a;b\r\n", csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.ColumnTitles())
	assert.Equal(t, 0, tb.RowCount())
}

func TestDecodeShortRecordLeavesCellsAbsent(t *testing.T) {
	tb, err := csvcodec.DecodeString("a;b;c\n1\n", csvcodec.DefaultFormat())
	require.NoError(t, err)
	r, err := tb.Row(0)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1"}, r.AsMap())
}

func TestDecodeTooManyFields(t *testing.T) {
	_, err := csvcodec.DecodeString("a;b\n1;2;3\n", csvcodec.DefaultFormat())
	require.ErrorIs(t, err, csvcodec.ErrMalformed)
}

func TestDecodeBareQuote(t *testing.T) {
	f := csvcodec.DefaultFormat()
	_, err := csvcodec.DecodeString("a\nx\"y\n", f)
	require.ErrorIs(t, err, csvcodec.ErrMalformed)

	f.LazyQuotes = true
	tb, err := csvcodec.DecodeString("a\nx\"y\n", f)
	require.NoError(t, err)
	v, err := tb.Value(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "x\"y", v)
}

func TestDecodeWithoutHeader(t *testing.T) {
	f := csvcodec.Format{Delimiter: ','}
	tb, err := csvcodec.DecodeString("a,b\nc\n", f)
	require.NoError(t, err)
	assert.Empty(t, tb.ColumnTitles())
	assert.Equal(t, 2, tb.RowCount())
	assert.Equal(t, 2, tb.Width())
}

func TestDecodeIntoAddsUnknownColumns(t *testing.T) {
	tb := table.New().AddColumnTitle("id").AddRow("0")
	err := csvcodec.DecodeInto(tb, strings.NewReader("extra;id\ne1;1\n"), csvcodec.DefaultFormat())
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "extra"}, tb.ColumnTitles())
	r, err := tb.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "e1"}, r.Strings())
}

func TestInvalidFormat(t *testing.T) {
	for _, d := range []rune{0, '"', '\n', '\r'} {
		f := csvcodec.Format{Delimiter: d}
		_, err := csvcodec.EncodeString(sample(), f)
		require.ErrorIs(t, err, csvcodec.ErrInvalidFormat)
		_, err = csvcodec.DecodeString("a", f)
		require.ErrorIs(t, err, csvcodec.ErrInvalidFormat)
	}
}

func TestRecords(t *testing.T) {
	in := "k;v\r\na;1\r\nb;2\r\n"
	var got []table.Record
	for rec, err := range csvcodec.Records(strings.NewReader(in), csvcodec.DefaultFormat()) {
		require.NoError(t, err)
		got = append(got, rec)
	}
	require.Len(t, got, 2)
	v, ok := got[1].Get("v")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	// Records feeds the table loader directly.
	tb := table.New()
	for rec, err := range csvcodec.Records(strings.NewReader(in), csvcodec.DefaultFormat()) {
		require.NoError(t, err)
		tb.AddRecord(rec)
	}
	assert.Equal(t, []string{"k", "v"}, tb.ColumnTitles())
}

func TestRecordsPositionalNames(t *testing.T) {
	f := csvcodec.Format{Delimiter: ';'}
	for rec, err := range csvcodec.Records(strings.NewReader("x;y\n"), f) {
		require.NoError(t, err)
		assert.Equal(t, table.Record{{Name: "0", Value: "x"}, {Name: "1", Value: "y"}}, rec)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.csv")

	require.NoError(t, csvcodec.EncodeFile(path, sample(), csvcodec.DefaultFormat()))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "c1;c2;c3\r\n1.0;2.0;3.0\r\n", string(raw))

	tb, err := csvcodec.DecodeFile(path, csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.True(t, sample().Equal(tb))

	tb, ok, err := csvcodec.DecodeFileIfExists(path, csvcodec.DefaultFormat())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, tb.RowCount())

	_, ok, err = csvcodec.DecodeFileIfExists(filepath.Join(dir, "missing.csv"), csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = csvcodec.DecodeFileIfExists(dir, csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = csvcodec.DecodeFile(filepath.Join(dir, "missing.csv"), csvcodec.DefaultFormat())
	require.Error(t, err)
}

func TestDecodeRepeatedHeader(t *testing.T) {
	tb, err := csvcodec.DecodeString("id;id;name\n1;2;ann\n", csvcodec.DefaultFormat())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, tb.ColumnTitles())
	assert.Equal(t, []string{"2", "ann"}, tb.Rows()[0].Strings())
}
