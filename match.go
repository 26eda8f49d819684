package tokmatch

import (
	"strings"
	"unicode/utf8"
)

// The single-step matchers each try one token against the head of the
// remaining candidate and report the consumed prefix. On failure the
// consumed prefix is empty and the remainder is untouched by the caller.

func stepLiteral(tok *Token, rest string) (string, bool) {
	if !strings.HasPrefix(rest, tok.Text) {
		return "", false
	}
	return rest[:len(tok.Text)], true
}

// stepAlternation applies the greedy rule: the first option in
// declaration order that prefixes the remainder wins.
func stepAlternation(tok *Token, rest string) (string, bool) {
	for _, option := range tok.Options {
		if strings.HasPrefix(rest, option) {
			return rest[:len(option)], true
		}
	}
	return "", false
}

// stepWildcard consumes exactly one code point, so a multi-byte character
// is matched as a single unit.
func stepWildcard(tok *Token, rest string) (string, bool) {
	if rest == "" {
		return "", false
	}
	_, w := utf8.DecodeRuneInString(rest)
	return rest[:w], true
}

// alternationBranches is the exhaustive-mode counterpart of
// stepAlternation: every option that prefixes the remainder, in
// declaration order. This is the branch point the exhaustive search
// explores.
func alternationBranches(tok *Token, rest string) []string {
	var branches []string
	for _, option := range tok.Options {
		if strings.HasPrefix(rest, option) {
			branches = append(branches, option)
		}
	}
	return branches
}

// matchGreedy walks the token sequence once, left to right, stopping at
// the first token that fails. The returned steps are a prefix of the
// token sequence, possibly empty.
func (p *Pattern) matchGreedy(candidate string) []Step {
	rest := candidate
	steps := make([]Step, 0, len(p.tokens))

	for i := range p.tokens {
		tok := &p.tokens[i]

		var consumed string
		var ok bool
		switch tok.Kind {
		case KindLiteral:
			consumed, ok = stepLiteral(tok, rest)
		case KindAlternation:
			consumed, ok = stepAlternation(tok, rest)
		case KindWildcard:
			consumed, ok = stepWildcard(tok, rest)
		}
		if !ok {
			break
		}

		steps = append(steps, Step{Token: tok, Text: consumed})
		rest = rest[len(consumed):]
	}

	return steps
}
