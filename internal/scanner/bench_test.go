package scanner

import (
	"fmt"
	"strings"
	"testing"
)

// buildBenchSource generates a synthetic document with the shape of typical
// script notation: assignments, strings, and indented blocks.
func buildBenchSource(lines int) string {
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "section%d:\n", i)
		fmt.Fprintf(&sb, "    width = %d.%d\n", i, i%10)
		fmt.Fprintf(&sb, "    label = \"row %d\"\n", i)
		fmt.Fprintf(&sb, "    @emit(item[%d])\n", i%7)
	}
	return sb.String()
}

func BenchmarkScan_Small(b *testing.B) {
	src := buildBenchSource(10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Scan(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScan_Medium(b *testing.B) {
	src := buildBenchSource(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Scan(src); err != nil {
			b.Fatal(err)
		}
	}
}
