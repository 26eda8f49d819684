package tokmatch

// Kind identifies the kind of a compiled pattern token.
type Kind int

const (
	KindLiteral     Kind = iota // plain text, matched verbatim
	KindAlternation             // (a|b|...), one option chosen per match
	KindWildcard                // ., any single code point
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindAlternation:
		return "alternation"
	case KindWildcard:
		return "wildcard"
	}
	return "?"
}

// Token is one compiled unit of a pattern. Exactly one of the payload
// fields is meaningful, selected by Kind: Text for literals, Options for
// alternations, neither for wildcards. Tokens are immutable once compiled
// and owned by their Pattern.
type Token struct {
	Kind    Kind
	Text    string   // for KindLiteral
	Options []string // for KindAlternation, each non-empty, declaration order
}

// Step records that one token matched one piece of the candidate.
// Token points into the Pattern's token sequence and Text is a substring
// of the candidate passed to the match call.
type Step struct {
	Token *Token
	Text  string
}
