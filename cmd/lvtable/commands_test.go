package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvtable/config"
	"github.com/katalvlaran/lvtable/table"
	"github.com/katalvlaran/lvtable/xlsxcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const people = "name;city;age\r\n" +
	"ann;oslo;31\r\n" +
	"bob;rome;42\r\n" +
	"cid;oslo;27\r\n" +
	"ann;oslo;31\r\n"

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCatStdin(t *testing.T) {
	out, _, err := execute(t, people, "cat", "-")
	require.NoError(t, err)
	assert.Equal(t, people, out)
}

func TestUnique(t *testing.T) {
	out, _, err := execute(t, people, "unique", "-")
	require.NoError(t, err)
	assert.Equal(t, "name;city;age\r\nann;oslo;31\r\nbob;rome;42\r\ncid;oslo;27\r\n", out)
}

func TestFilter(t *testing.T) {
	path := writeFile(t, "people.csv", people)
	out, _, err := execute(t, "", "filter", path, "--column", "city", "--equals", "rome")
	require.NoError(t, err)
	assert.Equal(t, "name;city;age\r\nbob;rome;42\r\n", out)

	_, _, err = execute(t, "", "filter", path, "--column", "country", "--equals", "x")
	require.ErrorIs(t, err, table.ErrNotFound)
}

func TestSortDescending(t *testing.T) {
	out, _, err := execute(t, people, "sort", "-", "--by", "age", "--desc")
	require.NoError(t, err)
	assert.Equal(t, "name;city;age\r\nbob;rome;42\r\nann;oslo;31\r\nann;oslo;31\r\ncid;oslo;27\r\n", out)
}

func TestJoin(t *testing.T) {
	left := writeFile(t, "people.csv", people)
	right := writeFile(t, "cities.csv", "city;country\r\noslo;no\r\n")

	out, _, err := execute(t, "", "join", left, right, "--left-key", "city")
	require.NoError(t, err)
	assert.Equal(t, "name;city;age;country\r\n"+
		"ann;oslo;31;no\r\n"+
		"cid;oslo;27;no\r\n"+
		"ann;oslo;31;no\r\n", out)
}

func TestGroup(t *testing.T) {
	out, _, err := execute(t, people, "group", "-", "--key", "city", "--value", "name")
	require.NoError(t, err)
	assert.Equal(t, "city;name\r\noslo;ann,cid,ann\r\nrome;bob\r\n", out)
}

func TestConvertRoundTripThroughXLSX(t *testing.T) {
	in := writeFile(t, "people.csv", people)
	xlsx := filepath.Join(t.TempDir(), "people.xlsx")

	_, _, err := execute(t, "", "convert", in, xlsx)
	require.NoError(t, err)
	tb, err := xlsxcodec.DecodeFile(xlsx, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, tb.RowCount())

	out, _, err := execute(t, "", "cat", xlsx)
	require.NoError(t, err)
	assert.Equal(t, people, out)
}

func TestOutputFlagWritesFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.csv")
	out, _, err := execute(t, people, "unique", "-", "--output", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "name;city;age\r\n"))
}

func TestDelimiterFlagAndConfig(t *testing.T) {
	out, _, err := execute(t, "a,b\n1,2\n", "cat", "-", "--delimiter", ",")
	require.NoError(t, err)
	assert.Equal(t, "a,b\r\n1,2\r\n", out)

	cfg := writeFile(t, "lvtable.yaml", "format:\n  delimiter: \",\"\n  line_ending: lf\n")
	out, _, err = execute(t, "a,b\n1,2\n", "cat", "-", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", out)

	_, _, err = execute(t, "", "cat", "-", "--delimiter", ";;")
	require.ErrorIs(t, err, errUsage)

	bad := writeFile(t, "bad.yaml", "logging:\n  level: loud\n")
	_, _, err = execute(t, "", "cat", "-", "--config", bad)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, people, "unique", "-", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"command started"`)
	assert.Contains(t, stderr, `"cmd":"unique"`)
	assert.Contains(t, stderr, `"op":"unique"`)
	assert.Contains(t, stderr, `"rows":3`)
}

func TestMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "cat", filepath.Join(t.TempDir(), "none.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
