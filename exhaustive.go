package tokmatch

// The exhaustive matcher explores every alternation choice. The natural
// shape is recursive descent with backtracking, but recursion depth would
// be bounded by the goroutine stack for pathological pattern/candidate
// pairs, so the search tree is walked iteratively over an explicit
// heap-allocated stack of frames instead.
//
// An input frame is deferred work: match a tail of the token sequence
// against a tail of the candidate, optionally carrying the alternation
// step that spawned it. An output frame is a finished sub-walk waiting
// for its children to resolve; children merge their results into it in
// place via the parent index, which stays valid because pops only ever
// shrink the top of the stack.

type frameKind uint8

const (
	frameInput frameKind = iota
	frameOutput
)

type frame struct {
	kind   frameKind
	parent int // index of the parent output frame, -1 at the root

	// input state
	tokens    []Token // remaining tokens to match
	rest      string  // remaining candidate
	chosen    Step    // alternation step this frame was spawned with
	hasChosen bool

	// output state
	steps     []Step // steps resolved by this frame's own walk
	count     int
	bestSteps []Step // best child result merged so far
	bestCount int
	complete  bool
}

// matchExhaustive returns, among all resolutions of every alternation,
// the result matching the most tokens. A complete best child is never
// displaced by an incomplete one, and an equal count never displaces an
// earlier result; children are pushed in declaration order and popped
// LIFO, so among equal-length results the last-declared option's subtree
// wins. See DESIGN.md for the tie-break decision.
func (p *Pattern) matchExhaustive(candidate string) []Step {
	stack := []frame{{
		kind:   frameInput,
		parent: -1,
		tokens: p.tokens,
		rest:   candidate,
	}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch f.kind {
		case frameInput:
			stack = resolveInput(f, stack)
		case frameOutput:
			if steps, done := resolveOutput(f, stack); done {
				return steps
			}
		}
	}

	// The root input frame always leaves behind a parentless output
	// frame, so the loop cannot drain without returning.
	panic("tokmatch: exhaustive search exhausted its stack")
}

// resolveInput walks the frame's tokens like the greedy matcher until the
// first alternation, which is not resolved inline: the walk stops and one
// child input frame is pushed per matching option, each continuing past
// the alternation. The frame's own resolved prefix is summarized in an
// output frame pushed below the children.
func resolveInput(f frame, stack []frame) []frame {
	var steps []Step
	if f.hasChosen {
		steps = append(steps, f.chosen)
	}

	rest := f.rest
	var branches []string
	var branchTok *Token
	branchNext := 0 // token index just past the alternation

	for i := range f.tokens {
		tok := &f.tokens[i]

		if tok.Kind == KindAlternation {
			branchTok = tok
			branchNext = i + 1
			branches = alternationBranches(tok, rest)
			break
		}

		var consumed string
		var ok bool
		if tok.Kind == KindWildcard {
			consumed, ok = stepWildcard(tok, rest)
		} else {
			consumed, ok = stepLiteral(tok, rest)
		}
		if !ok {
			break
		}

		steps = append(steps, Step{Token: tok, Text: consumed})
		rest = rest[len(consumed):]
	}

	// Complete only when the walk consumed every token of this frame's
	// slice with no alternation pending; the pre-chosen step does not
	// count toward the frame's own tokens.
	walked := len(steps)
	if f.hasChosen {
		walked--
	}

	out := len(stack)
	stack = append(stack, frame{
		kind:     frameOutput,
		parent:   f.parent,
		steps:    steps,
		count:    len(steps),
		complete: branchTok == nil && walked == len(f.tokens),
	})

	for _, option := range branches {
		stack = append(stack, frame{
			kind:      frameInput,
			parent:    out,
			tokens:    f.tokens[branchNext:],
			rest:      rest[len(option):],
			chosen:    Step{Token: branchTok, Text: rest[:len(option)]},
			hasChosen: true,
		})
	}

	return stack
}

// resolveOutput folds the frame's best child into its own steps. The root
// frame's folded result is the final answer; any other frame competes for
// its parent's best-child slot.
func resolveOutput(f frame, stack []frame) ([]Step, bool) {
	f.count += f.bestCount
	f.steps = append(f.steps, f.bestSteps...)

	if f.parent < 0 {
		return f.steps, true
	}

	parent := &stack[f.parent]
	if f.complete {
		if !parent.complete || f.count > parent.bestCount {
			parent.bestSteps = f.steps
			parent.bestCount = f.count
			parent.complete = true
		}
	} else if !parent.complete && f.count > parent.bestCount {
		parent.bestSteps = f.steps
		parent.bestCount = f.count
	}

	return nil, false
}
