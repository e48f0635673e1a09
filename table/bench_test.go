package table_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvtable/table"
)

const benchRows = 1000

func benchTable() *table.Table {
	tb := table.New(table.WithInitialCapacity(benchRows, 4)).AddColumnTitles("k", "v")
	for i := 0; i < benchRows; i++ {
		tb.AddRow(strconv.Itoa(i%97), strconv.Itoa(i))
	}

	return tb
}

func BenchmarkAddRow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = benchTable()
	}
}

func BenchmarkSortedBy(b *testing.B) {
	tb := benchTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tb.As().SortedBy(table.ColumnKey("k"), table.Ascending)
	}
}

func BenchmarkUniqueRows(b *testing.B) {
	tb := benchTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tb.As().UniqueRows()
	}
}

func BenchmarkInnerJoin(b *testing.B) {
	left, right := benchTable(), benchTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = table.InnerJoin(left, right, table.RowIndexKey, table.RowIndexKey)
	}
}
