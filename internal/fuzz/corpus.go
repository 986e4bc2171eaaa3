// Package fuzz generates synthetic HolyC source for lexer/parser property
// tests and benchmarks, the way ccuetoh-maqui-lang/internal/test generated
// synthetic token streams for its own lexer benchmarks.
package fuzz

import (
	"math/rand"
	"strings"
)

// validFragments are source snippets that lex and parse cleanly on their
// own; RandomSource stitches them together into a larger program.
const validFragments = "x = 1;\n" +
	"y = x + 2 * 3;\n" +
	"z = (x - y) / 2;\n" +
	"if (x) { y = 1; } else { y = 0; }\n" +
	"while (x) { x = x - 1; }\n" +
	"for (i = 0; i; i = i - 1) { y = y + i; }\n" +
	"s = \"a string with a \\n escape\";\n" +
	"c = 'a';\n" +
	"p = f(1, 2, 3);\n" +
	"q = arr[0].field->other;\n" +
	"// a line comment\n" +
	"/* a block comment */\n"

// RandomSource returns size newline-joined fragments drawn from
// validFragments, concatenated into a single program. The source r comes
// from the caller so tests can seed it for reproducibility.
func RandomSource(r *rand.Rand, size int) string {
	fragments := strings.Split(strings.TrimRight(validFragments, "\n"), "\n")

	var sb strings.Builder
	for i := 0; i < size; i++ {
		sb.WriteString(fragments[r.Intn(len(fragments))])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RandomIdentifiers returns n space-separated synthetic identifiers, for
// exercising the lexer's identifier/keyword state without any other token
// kind in the mix.
func RandomIdentifiers(r *rand.Rand, n int) string {
	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		length := 1 + r.Intn(8)
		for j := 0; j < length; j++ {
			sb.WriteByte(letters[r.Intn(len(letters))])
		}
	}
	return sb.String()
}
