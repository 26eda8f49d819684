package tokmatch

import (
	"regexp"
	"strings"
	"testing"

	wildcard "github.com/IGLOU-EU/go-wildcard/v2"
)

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Compile("abc(d|e|f).")
	}
}

func BenchmarkGreedy(b *testing.B) {
	p := MustCompile("abc(d|e|f).")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.MatchGreedy("abcde")
	}
}

// BenchmarkExhaustiveBacktrack measures the frame-stack search on a
// pattern where the greedy walk picks the wrong option first.
func BenchmarkExhaustiveBacktrack(b *testing.B) {
	p := MustCompile("(aba|abac).(aba|abac).")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.MatchExhaustive("abacabacd")
	}
}

// BenchmarkExhaustiveDeepChain measures per-frame overhead on a long
// single-branch chain of alternations.
func BenchmarkExhaustiveDeepChain(b *testing.B) {
	const depth = 1000
	p := MustCompile(strings.Repeat("(x|y)", depth))
	input := strings.Repeat("x", depth)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.MatchExhaustive(input)
	}
}

// engineSet compares roughly equivalent patterns across engines. The
// semantics differ (this engine matches prefixes, go-wildcard matches
// whole strings), so treat results as ballpark only.
var engineSet = []struct {
	name  string
	tok   string
	wild  string
	re    string
	input string
}{
	{"literal", "needle", "needle", "^needle", "needle"},
	{"wildcard", "a.c", "a?c", "^a.c", "abc"},
	{"alternation", "ab(cd|ce).", "ab?e?", "^ab(cd|ce).", "abcex"},
}

func BenchmarkEngines(b *testing.B) {
	for _, tc := range engineSet {
		p := MustCompile(tc.tok)
		b.Run(tc.name+"/tokmatch", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				p.MatchString(tc.input)
			}
		})

		re := regexp.MustCompile(tc.re)
		b.Run(tc.name+"/regexp", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				re.MatchString(tc.input)
			}
		})

		b.Run(tc.name+"/wildcard", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				wildcard.Match(tc.wild, tc.input)
			}
		})
	}
}
