package elsql

import (
	"regexp"
	"strings"
)

// directiveNameRe matches the uppercase directive name immediately
// following '@'.
var directiveNameRe = regexp.MustCompile(`^@([A-Z]+)`)

// frame is one entry of the parser's explicit container stack. indent
// is the column the frame's opening line was found at; a line closes
// frame f when f's indent is >= the line's own indent, except for the
// bottom Name frame, which only the next @NAME or end-of-input closes.
type frame struct {
	container    *Container
	indent       int
	kind         string // directive name that opened this frame; the fragment name for the Name frame
	requiresBody bool
	line         int
}

// parseState carries the stack and name map for one resource's single
// pass: parsing is a single pass with an explicit stack of open
// containers.
type parseState struct {
	cfg       Config
	fileIndex int
	names     map[string]*NameFragment
	order     []string
	stack     []frame
}

// ParseResource parses one resource's raw text into a name-to-fragment
// map. fileIndex identifies the resource for ParseError reporting when
// several resources are layered together.
func ParseResource(cfg Config, fileIndex int, content string) (map[string]*NameFragment, error) {
	st := &parseState{cfg: cfg, fileIndex: fileIndex, names: make(map[string]*NameFragment)}
	lines := splitLines(content)
	for i, raw := range lines {
		lineNo := i + 1
		if err := st.consumeLine(lineNo, raw); err != nil {
			return nil, err
		}
	}
	if err := st.closeAll(len(lines) + 1); err != nil {
		return nil, err
	}
	return st.names, nil
}

// splitLines breaks content on LF, tolerating a trailing CR (lines may
// be separated by LF or CRLF). A trailing empty line from a final
// newline is dropped.
func splitLines(content string) []string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}

// indentOf returns the column of the first non-space character; tabs
// count as one column.
func indentOf(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func (st *parseState) parseErr(line int, format string, args ...any) error {
	return &ParseError{FileIndex: st.fileIndex, Line: line, Message: sprintf(format, args...)}
}

func (st *parseState) top() *frame {
	if len(st.stack) == 0 {
		return nil
	}
	return &st.stack[len(st.stack)-1]
}

// popTo pops frames whose indent is >= indent, stopping before the
// bottom (Name) frame. Each popped container-requiring frame must
// already have at least one child.
func (st *parseState) popTo(indent int, line int) error {
	for len(st.stack) > 1 && st.stack[len(st.stack)-1].indent >= indent {
		f := st.stack[len(st.stack)-1]
		if f.requiresBody && len(f.container.Children) == 0 {
			return st.parseErr(f.line, "@%s requires a block body but has none", f.kind)
		}
		st.stack = st.stack[:len(st.stack)-1]
	}
	return nil
}

// closeAll pops every remaining frame, including the Name frame, at
// end of resource (or right before the next @NAME). An @NAME block
// with no content at all is a parse error.
func (st *parseState) closeAll(line int) error {
	if err := st.popTo(-1, line); err != nil {
		return err
	}
	if len(st.stack) > 0 {
		f := st.stack[0]
		if f.requiresBody && len(f.container.Children) == 0 {
			return st.parseErr(f.line, "@NAME(%s) has no content", f.kind)
		}
	}
	st.stack = nil
	return nil
}

func (st *parseState) consumeLine(lineNo int, raw string) error {
	indent := indentOf(raw)
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return nil
	case strings.HasPrefix(trimmed, "--"):
		return nil
	case strings.HasPrefix(trimmed, "@"):
		return st.consumeDirective(lineNo, indent, trimmed)
	default:
		return st.consumeText(lineNo, indent, raw)
	}
}

func (st *parseState) consumeText(lineNo, indent int, raw string) error {
	if err := st.popTo(indent, lineNo); err != nil {
		return err
	}
	top := st.top()
	if top == nil {
		return st.parseErr(lineNo, "text found outside any @NAME block")
	}
	text := st.cfg.FormatLine(raw[minInt(indent, len(raw)):])
	top.container.Add(&TextFragment{Text: text})
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// consumeDirective dispatches a "@WORD(...)" line. @NAME is handled
// specially because it resets the stack instead of being nested inside
// the current top.
func (st *parseState) consumeDirective(lineNo, indent int, trimmed string) error {
	m := directiveNameRe.FindStringSubmatch(trimmed)
	if m == nil {
		return st.parseErr(lineNo, "unknown directive: %s", trimmed)
	}
	name := m[1]
	rest := trimmed[len(m[0]):]

	args, hasArgs, trailing, err := splitDirectiveArgs(rest)
	if err != nil {
		return st.parseErr(lineNo, "%s", err.Error())
	}

	if name == "NAME" {
		return st.openName(lineNo, indent, args, hasArgs)
	}

	if err := st.popTo(indent, lineNo); err != nil {
		return err
	}
	if st.top() == nil {
		return st.parseErr(lineNo, "@%s found outside any @NAME block", name)
	}

	switch name {
	case "WHERE":
		return st.pushContainer(lineNo, indent, "WHERE", true, &WhereFragment{})
	case "AND", "OR":
		variable, match, hasMatch, err := parsePredicateArgs(args)
		if err != nil {
			return st.parseErr(lineNo, "@%s: %s", name, err.Error())
		}
		kw := "AND "
		if name == "OR" {
			kw = "OR "
		}
		frag := &ConjunctionFragment{Keyword: kw, Variable: variable, MatchValue: match, HasMatch: hasMatch}
		st.top().container.Add(frag)
		st.pushFrame(lineNo, indent, name, true, &frag.Container)
		return nil
	case "IF":
		variable, match, hasMatch, err := parsePredicateArgs(args)
		if err != nil {
			return st.parseErr(lineNo, "@IF: %s", err.Error())
		}
		frag := &IfFragment{Variable: variable, MatchValue: match, HasMatch: hasMatch}
		st.top().container.Add(frag)
		st.pushFrame(lineNo, indent, "IF", true, &frag.Container)
		return nil
	case "LIKE":
		return st.pushContainer(lineNo, indent, "LIKE", true, &LikeFragment{})
	case "ENDLIKE", "ENDPAGING":
		return nil
	case "LOOP":
		variable, err := parseSingleVar(args)
		if err != nil {
			return st.parseErr(lineNo, "@LOOP: %s", err.Error())
		}
		frag := &LoopFragment{Variable: variable, Separator: ", "}
		st.top().container.Add(frag)
		st.pushFrame(lineNo, indent, "LOOP", true, &frag.Container)
		return nil
	case "LOOPJOIN":
		text := strings.TrimSpace(trailing)
		st.top().container.Add(&LoopJoinFragment{Text: text})
		return nil
	case "OFFSETFETCH":
		off, fetch := "offset", "fetch"
		if hasArgs {
			a, b, err := parseTwoVars(args)
			if err != nil {
				return st.parseErr(lineNo, "@OFFSETFETCH: %s", err.Error())
			}
			off, fetch = a, b
		}
		st.top().container.Add(&OffsetFetchFragment{OffsetVar: off, FetchVar: fetch})
		return nil
	case "PAGING":
		off, fetch := "offset", "fetch"
		if hasArgs {
			a, b, err := parseTwoVars(args)
			if err != nil {
				return st.parseErr(lineNo, "@PAGING: %s", err.Error())
			}
			off, fetch = a, b
		}
		frag := &PagingFragment{OffsetVar: off, FetchVar: fetch}
		st.top().container.Add(frag)
		st.pushFrame(lineNo, indent, "PAGING", true, &frag.Container)
		return nil
	case "INCLUDE":
		ref := strings.TrimSpace(args)
		if ref == "" {
			return st.parseErr(lineNo, "@INCLUDE requires an argument")
		}
		frag := &IncludeFragment{}
		if strings.HasPrefix(ref, ":") {
			frag.VarName = ref[1:]
		} else {
			frag.Name = ref
		}
		st.top().container.Add(frag)
		return nil
	case "VALUE":
		variable, err := parseSingleVar(args)
		if err != nil {
			return st.parseErr(lineNo, "@VALUE: %s", err.Error())
		}
		st.top().container.Add(&ValueFragment{Variable: variable})
		return nil
	default:
		return st.parseErr(lineNo, "unknown directive: @%s", name)
	}
}

func (st *parseState) openName(lineNo, indent int, args string, hasArgs bool) error {
	if indent != 0 {
		return st.parseErr(lineNo, "@NAME must not be nested inside another block")
	}
	if err := st.closeAll(lineNo); err != nil {
		return err
	}
	name := strings.TrimSpace(args)
	if !hasArgs || name == "" {
		return st.parseErr(lineNo, "@NAME requires a name argument")
	}
	frag := &NameFragment{Name: name}
	st.names[name] = frag
	st.order = append(st.order, name)
	st.stack = []frame{{container: &frag.Container, indent: indent, kind: name, requiresBody: true, line: lineNo}}
	return nil
}

func (st *parseState) pushContainer(lineNo, indent int, kind string, requiresBody bool, frag Fragment) error {
	st.top().container.Add(frag)
	c := containerOf(frag)
	st.pushFrame(lineNo, indent, kind, requiresBody, c)
	return nil
}

func (st *parseState) pushFrame(lineNo, indent int, kind string, requiresBody bool, c *Container) {
	st.stack = append(st.stack, frame{container: c, indent: indent, kind: kind, requiresBody: requiresBody, line: lineNo})
}

// containerOf extracts the embedded *Container from a freshly
// constructed composite fragment so pushFrame can track it.
func containerOf(f Fragment) *Container {
	switch v := f.(type) {
	case *WhereFragment:
		return &v.Container
	case *LikeFragment:
		return &v.Container
	default:
		return nil
	}
}

