package elsql

import (
	"strconv"
	"strings"
)

// loopIndexTokens pairs each @LOOPINDEX-family token with its nesting
// depth (0 = innermost loop, 1 = its parent, 2 = its grandparent) and
// is checked in this longest-first order so "@LOOPINDEX2"/"@LOOPINDEX3"
// are substituted before a naive match against the "@LOOPINDEX" prefix
// could corrupt them.
var loopIndexTokens = []struct {
	token string
	depth int
}{
	{"@LOOPINDEX3", 2},
	{"@LOOPINDEX2", 1},
	{"@LOOPINDEX", 0},
}

// renderCtx carries the state threaded through one render call: the
// bundle (for @INCLUDE cross-references), the caller's parameter
// source, and the set of fragment names currently being rendered (for
// cyclic-include detection). It is created fresh per render call and
// never shared across goroutines.
type renderCtx struct {
	bundle *Bundle
	params ParamSource
	active map[string]bool
}

// render walks the named fragment's body into a fresh buffer and
// returns the resulting SQL text.
func render(bundle *Bundle, name string, params ParamSource) (string, error) {
	root, ok := bundle.fragments[name]
	if !ok {
		return "", &UnknownFragmentError{Name: name}
	}
	ctx := &renderCtx{bundle: bundle, params: params, active: map[string]bool{name: true}}
	buf := &buffer{}
	if err := ctx.walkChildren(buf, root.Children, nil); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func currentLoopIndex(loopStack []int) int {
	if len(loopStack) == 0 {
		return -1
	}
	return loopStack[len(loopStack)-1]
}

func (c *renderCtx) walkChildren(buf *buffer, children []Fragment, loopStack []int) error {
	for _, f := range children {
		if err := c.walkOne(buf, f, loopStack); err != nil {
			return err
		}
	}
	return nil
}

func (c *renderCtx) walkOne(buf *buffer, f Fragment, loopStack []int) error {
	switch frag := f.(type) {
	case *TextFragment:
		buf.writeSeparated(c.renderText(frag.Text, loopStack))
		return nil

	case *ValueFragment:
		name := effectiveName(frag.Variable, currentLoopIndex(loopStack), c.params)
		if !c.params.HasValue(name) {
			return &MissingVariableError{Variable: frag.Variable}
		}
		buf.writeSeparated(toStringValue(c.params.GetValue(name)))
		return nil

	case *IncludeFragment:
		return c.walkInclude(buf, frag, loopStack)

	case *WhereFragment:
		return c.walkWhere(buf, frag, loopStack)

	case *ConjunctionFragment:
		return c.walkConjunction(buf, frag, loopStack)

	case *IfFragment:
		if evalPredicate(frag.Variable, frag.MatchValue, frag.HasMatch, currentLoopIndex(loopStack), c.params) {
			return c.walkChildren(buf, frag.Children, loopStack)
		}
		return nil

	case *LoopFragment:
		return c.walkLoop(buf, frag, loopStack)

	case *LoopJoinFragment:
		// Consumed by walkLoop before the per-iteration walk; a
		// LoopJoinFragment reached here (outside any @LOOP, or after
		// extraction) contributes nothing.
		return nil

	case *LikeFragment:
		scratch := &buffer{}
		if err := c.walkChildren(scratch, frag.Children, loopStack); err != nil {
			return err
		}
		buf.writeSeparated(c.bundle.config.FormatLike(scratch.String()))
		return nil

	case *OffsetFetchFragment:
		offset, err := resolveIntVar(frag.OffsetVar, currentLoopIndex(loopStack), c.params, 0)
		if err != nil {
			return err
		}
		fetch, err := resolveIntVar(frag.FetchVar, currentLoopIndex(loopStack), c.params, NoFetchLimit)
		if err != nil {
			return err
		}
		buf.writeSeparated(c.bundle.config.OffsetFetch(offset, fetch))
		return nil

	case *PagingFragment:
		offset, err := resolveIntVar(frag.OffsetVar, currentLoopIndex(loopStack), c.params, 0)
		if err != nil {
			return err
		}
		fetch, err := resolveIntVar(frag.FetchVar, currentLoopIndex(loopStack), c.params, NoFetchLimit)
		if err != nil {
			return err
		}
		scratch := &buffer{}
		if err := c.walkChildren(scratch, frag.Children, loopStack); err != nil {
			return err
		}
		buf.writeSeparated(c.bundle.config.Paging(offset, fetch, scratch.String()))
		return nil

	default:
		return &UnknownFragmentError{Name: "<unrecognized fragment>"}
	}
}

// renderText applies text substitution in two passes: first the
// @LOOPINDEX family of tokens is replaced textually, then any
// `:identifier` left in the result is replaced with its bound value
// when one exists. An `:identifier` with no bound value is left as
// literal text, since it may be a bind-variable placeholder meant for
// the caller's own SQL driver rather than an ElSql variable.
func (c *renderCtx) renderText(text string, loopStack []int) string {
	text = substituteLoopIndexTokens(text, loopStack)
	return substituteInlineVars(text, c.params)
}

func substituteLoopIndexTokens(text string, loopStack []int) string {
	if !strings.Contains(text, "@LOOPINDEX") {
		return text
	}
	for _, lt := range loopIndexTokens {
		if !strings.Contains(text, lt.token) {
			continue
		}
		idx := loopIndexAtDepth(loopStack, lt.depth)
		if idx < 0 {
			continue
		}
		text = strings.ReplaceAll(text, lt.token, strconv.Itoa(idx))
	}
	return text
}

// loopIndexAtDepth maps @LOOPINDEX (depth 0) to the innermost loop,
// @LOOPINDEX2 (depth 1) to its parent, @LOOPINDEX3 (depth 2) to its
// grandparent; returns -1 if no loop is open at that nesting level.
func loopIndexAtDepth(loopStack []int, depth int) int {
	i := len(loopStack) - 1 - depth
	if i < 0 {
		return -1
	}
	return loopStack[i]
}

// identRefRe matches a `:name` reference inside plain SQL text.
var identRefRe = mustIdentRefRegexp()

func substituteInlineVars(text string, params ParamSource) string {
	if !strings.Contains(text, ":") {
		return text
	}
	return identRefRe.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1:]
		if !params.HasValue(name) {
			return match
		}
		return toStringValue(params.GetValue(name))
	})
}

func (c *renderCtx) walkInclude(buf *buffer, frag *IncludeFragment, loopStack []int) error {
	name := frag.Name
	if frag.VarName != "" {
		if !c.params.HasValue(frag.VarName) {
			return &MissingVariableError{Variable: frag.VarName}
		}
		name = toStringValue(c.params.GetValue(frag.VarName))
	}
	if c.active[name] {
		return &CyclicIncludeError{Name: name}
	}
	target, ok := c.bundle.fragments[name]
	if !ok {
		return &UnknownFragmentError{Name: name}
	}
	c.active[name] = true
	defer delete(c.active, name)
	return c.walkChildren(buf, target.Children, loopStack)
}

// walkWhere implements the @WHERE rule. "WHERE " is written eagerly so
// that a nested @AND/@OR sees it already present on the buffer's tail
// and suppresses its own connective; if the body turns out to
// contribute nothing, the keyword is rolled back along with it.
func (c *renderCtx) walkWhere(buf *buffer, frag *WhereFragment, loopStack []int) error {
	p := buf.Len()
	buf.writeSeparated("WHERE ")
	bodyStart := buf.Len()
	if err := c.walkChildren(buf, frag.Children, loopStack); err != nil {
		return err
	}
	if buf.isWhitespaceOnlyFrom(bodyStart) {
		buf.Truncate(p)
		return nil
	}
	trimmed := strings.TrimRight(string(buf.b[bodyStart:]), " \t\r\n")
	buf.Truncate(bodyStart)
	buf.WriteString(trimmed)
	return nil
}

// walkConjunction implements the @AND/@OR rule: the connective's body
// is evaluated into a scratch buffer first so an empty body never
// leaves a dangling keyword, then the real buffer's own tail decides
// whether the connective text is needed at all.
func (c *renderCtx) walkConjunction(buf *buffer, frag *ConjunctionFragment, loopStack []int) error {
	if !evalPredicate(frag.Variable, frag.MatchValue, frag.HasMatch, currentLoopIndex(loopStack), c.params) {
		return nil
	}
	scratch := &buffer{}
	if err := c.walkChildren(scratch, frag.Children, loopStack); err != nil {
		return err
	}
	if scratch.isWhitespaceOnlyFrom(0) {
		return nil
	}
	if !buf.endsWithConnective() {
		buf.writeSeparated(frag.Keyword)
	}
	buf.WriteString(scratch.String())
	return nil
}

// walkLoop implements the @LOOP rule plus the @LOOPJOIN extension: a
// direct LoopJoinFragment child is not part of any iteration's body —
// it sets the separator placed between iterations — and the remaining
// children are walked once per index with that index pushed onto
// loopStack.
func (c *renderCtx) walkLoop(buf *buffer, frag *LoopFragment, loopStack []int) error {
	if !c.params.HasValue(frag.Variable) {
		return &MissingVariableError{Variable: frag.Variable}
	}
	n, ok := toInt(c.params.GetValue(frag.Variable))
	if !ok {
		return &TypeError{Variable: frag.Variable, Want: "integer"}
	}

	separator := frag.Separator
	body := make([]Fragment, 0, len(frag.Children))
	for _, child := range frag.Children {
		if lj, isJoin := child.(*LoopJoinFragment); isJoin {
			separator = lj.Text
			continue
		}
		body = append(body, child)
	}

	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteString(separator)
		}
		if err := c.walkChildren(buf, body, append(loopStack, i)); err != nil {
			return err
		}
	}
	return nil
}
