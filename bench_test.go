package lex_test

import (
	"testing"

	"github.com/mk73e/lex"
)

const benchInput = `import import1;
// ..................................
import something_else;
import something_else1;
`

func BenchmarkScan(b *testing.B) {
	l := lex.Must(lex.New([]lex.Rule{
		lex.Token("Import", "import"),
		lex.Token("Semi", ";"),
		lex.Regex("Ident", "[a-zA-Z_][a-zA-Z0-9_]*"),
		lex.Skip(`//[^\n]*`),
		lex.Skip(`[ \t\r\n\f]+`),
	}))

	b.SetBytes(int64(len(benchInput)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := l.Lex(benchInput)
		n := 0
		for s.Scan() {
			n++
		}
		if err := s.Err(); err != nil {
			b.Fatal(err)
		}
		if n != 9 {
			b.Fatalf("got %d tokens, want 9", n)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	rules := []lex.Rule{
		lex.Token("Import", "import"),
		lex.Token("Semi", ";"),
		lex.Regex("Ident", "[a-zA-Z_][a-zA-Z0-9_]*"),
		lex.Skip(`//[^\n]*`),
		lex.Skip(`[ \t\r\n\f]+`),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lex.New(rules); err != nil {
			b.Fatal(err)
		}
	}
}
