package tokmatch

import (
	"fmt"
	"strings"
)

// compile scans the pattern text into its token sequence in one pass.
//
// Text up to the next '.' or '(' becomes a literal token (only if
// non-empty). A '.' becomes a wildcard. A '(' opens an alternation whose
// options are split on '|' until the closing ')'; every option must be
// non-empty and at least one '|' must appear, so "(x)" is invalid. After
// the scan, trailing text becomes a final literal; an empty pattern
// compiles to a single empty literal, so every pattern has at least one
// token. There is no escape syntax for '.' or '('.
func compile(expr string) ([]Token, error) {
	unparsed := expr
	var tokens []Token

	for {
		i := strings.IndexAny(unparsed, ".(")
		if i < 0 {
			break
		}

		if raw := unparsed[:i]; raw != "" {
			tokens = append(tokens, Token{Kind: KindLiteral, Text: raw})
		}

		if unparsed[i] == '.' {
			tokens = append(tokens, Token{Kind: KindWildcard})
			unparsed = unparsed[i+1:]
			continue
		}

		// Alternation body starts after the '('.
		unparsed = unparsed[i+1:]
		options, rest, err := scanAlternation(unparsed)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, Token{Kind: KindAlternation, Options: options})
		unparsed = rest
	}

	if unparsed != "" || len(tokens) == 0 {
		tokens = append(tokens, Token{Kind: KindLiteral, Text: unparsed})
	}

	return tokens, nil
}

// scanAlternation consumes "opt1|opt2|...)" and returns the options plus
// the text following the closing paren.
func scanAlternation(body string) (options []string, rest string, err error) {
	sawPipe := false

	for {
		j := strings.IndexAny(body, "|)")
		if j < 0 {
			return nil, "", fmt.Errorf("%w: alternation missing closing paren", ErrMalformedPattern)
		}

		option := body[:j]
		if option == "" {
			return nil, "", fmt.Errorf("%w: empty alternation option", ErrMalformedPattern)
		}

		if body[j] == '|' {
			sawPipe = true
			options = append(options, option)
			body = body[j+1:]
			continue
		}

		if !sawPipe {
			return nil, "", fmt.Errorf("%w: alternation with a single option", ErrMalformedPattern)
		}
		options = append(options, option)
		return options, body[j+1:], nil
	}
}
