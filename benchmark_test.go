package blockgen

import (
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "blocks.txt"))
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	reg, err := DecodeFile(filepath.Join("testdata", "blocks.txt"))
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	chk := CheckerFunc(func(string) bool { return true })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(reg, chk, nil); err != nil {
			b.Fatalf("generate: %v", err)
		}
	}
}
