// Package tokmatch implements a small prefix-matching engine for a mini
// pattern language: literal text, single-character wildcards (.), and
// bracketed alternations ((one|two|three)). A compiled Pattern matches
// candidates either greedily in a single pass or exhaustively, searching
// every alternation choice for the longest match.
//
// There is no escape syntax for '.' or '(', and no repetition, anchoring
// or character classes; this is not a regular-expression dialect.
package tokmatch

import "fmt"

// Pattern is a compiled pattern. It owns the source text and the token
// sequence, plus a running counter of the best match length ever observed
// across calls on this instance. The counter makes match calls mutating:
// sharing a Pattern between goroutines requires external synchronization.
type Pattern struct {
	expr   string
	tokens []Token

	// mostTokensMatched never decreases; every match call raises it to
	// the result length if that is a new maximum.
	mostTokensMatched int
}

// Compile parses a pattern into a Pattern ready for matching.
// It returns an error wrapping ErrMalformedPattern for invalid input.
func Compile(expr string) (*Pattern, error) {
	tokens, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return &Pattern{expr: expr, tokens: tokens}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("tokmatch: Compile(%q): %v", expr, err))
	}
	return p
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.expr
}

// NumTokens returns the number of compiled tokens; always at least one.
func (p *Pattern) NumTokens() int {
	return len(p.tokens)
}

// Tokens returns the compiled token sequence. The slice is owned by the
// Pattern and must not be modified.
func (p *Pattern) Tokens() []Token {
	return p.tokens
}

// MostTokensMatched reports the length of the longest result any match
// call on this Pattern has produced so far. It starts at zero and never
// decreases.
func (p *Pattern) MostTokensMatched() int {
	return p.mostTokensMatched
}

// MatchGreedy matches candidate in a single left-to-right pass: literals
// and wildcards consume or fail, alternations take the first option that
// matches, and the walk stops at the first failure with no backtracking.
// The result pairs each matched token with the exact substring of
// candidate it consumed and is a prefix of the token sequence; it is
// complete when its length equals NumTokens.
func (p *Pattern) MatchGreedy(candidate string) []Step {
	steps := p.matchGreedy(candidate)
	p.recordBest(len(steps))
	return steps
}

// MatchExhaustive matches candidate trying every alternation option,
// returning the result that matches the most tokens. Unlike MatchGreedy
// it backtracks, so its result is never shorter. The search runs on an
// explicit heap stack, so its depth is not limited by the goroutine call
// stack.
func (p *Pattern) MatchExhaustive(candidate string) []Step {
	steps := p.matchExhaustive(candidate)
	p.recordBest(len(steps))
	return steps
}

// MatchString reports whether candidate has a prefix matching the whole
// token sequence, searching exhaustively.
func (p *Pattern) MatchString(candidate string) bool {
	return len(p.MatchExhaustive(candidate)) == len(p.tokens)
}

func (p *Pattern) recordBest(n int) {
	if n > p.mostTokensMatched {
		p.mostTokensMatched = n
	}
}
