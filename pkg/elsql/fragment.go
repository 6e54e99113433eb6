package elsql

// Fragment is one node of the tree the parser builds for each
// top-level named element and that the renderer walks to produce SQL
// text. Every concrete type below implements Fragment purely as a
// marker — the renderer dispatches on concrete type via a type switch
// rather than through Fragment-declared methods.
type Fragment interface {
	fragmentNode()
}

// Container holds an ordered sequence of child fragments and is
// embedded by every composite fragment type. It is not itself a
// standalone Fragment.
type Container struct {
	Children []Fragment
}

func (c *Container) Add(f Fragment) {
	c.Children = append(c.Children, f)
}

// TextFragment is a literal line of SQL text, already dialect-formatted
// by Config.FormatLine at parse time.
type TextFragment struct {
	Text string
}

func (*TextFragment) fragmentNode() {}

// NameFragment is the root of one top-level named element — what a
// resource's un-indented `@NAME(...)` line introduces. Bundle stores one of
// these per distinct name.
type NameFragment struct {
	Name string
	Container
}

func (*NameFragment) fragmentNode() {}

// IncludeFragment splices in the fragment tree of another named
// element by reference. VarName is set when the include names a bound
// variable instead of a literal fragment name (`@INCLUDE(:name)`) and
// is empty otherwise.
type IncludeFragment struct {
	Name    string
	VarName string
}

func (*IncludeFragment) fragmentNode() {}

// WhereFragment renders its body and conditionally prefixes "WHERE ":
// if every child fragment contributes nothing (the body renders to
// whitespace only), the whole WHERE clause — keyword included —
// disappears.
type WhereFragment struct {
	Container
}

func (*WhereFragment) fragmentNode() {}

// ConjunctionFragment is the shared shape of @AND and @OR: a body that
// is prefixed with its Keyword ("AND " / "OR ") unless the buffer is
// empty or already ends in WHERE, AND, OR, or an open parenthesis.
// Variable/MatchValue govern the predicate exactly as IfFragment's do.
type ConjunctionFragment struct {
	Keyword    string
	Variable   string
	MatchValue string
	HasMatch   bool
	Container
}

func (*ConjunctionFragment) fragmentNode() {}

// IfFragment renders its body only when its condition holds. Variable
// is always set: a bare `@IF(:flag)` (HasMatch false) tests
// presence/truthiness of Variable; a `@IF(:kind = 'ACTIVE')` form
// (HasMatch true) tests Variable's bound value against MatchValue
// case-insensitively.
type IfFragment struct {
	Variable   string
	MatchValue string
	HasMatch   bool
	Container
}

func (*IfFragment) fragmentNode() {}

// LoopFragment repeats its body once per index in [0, loop count),
// substituting @LOOPINDEX-family tokens and `:name` + index-decorated
// variable references each iteration, joined by Separator (default
// ", ") unless a nested @LOOPJOIN overrides it.
type LoopFragment struct {
	Variable  string
	Separator string
	Container
}

func (*LoopFragment) fragmentNode() {}

// LoopJoinFragment overrides the separator text used between
// iterations of the LoopFragment it is a direct child of. It
// contributes no output itself, and has no effect when nested any
// deeper inside the loop body.
type LoopJoinFragment struct {
	Text string
}

func (*LoopJoinFragment) fragmentNode() {}

// LikeFragment renders its body and passes the result through
// Config.FormatLike.
type LikeFragment struct {
	Container
}

func (*LikeFragment) fragmentNode() {}

// OffsetFetchFragment renders a pagination suffix via
// Config.OffsetFetch using the bound Offset/Fetch variables. The
// parser sets the names to "offset" / "fetch" when the directive is
// written without arguments.
type OffsetFetchFragment struct {
	OffsetVar string
	FetchVar  string
}

func (*OffsetFetchFragment) fragmentNode() {}

// PagingFragment renders its body and rewrites it via Config.Paging
// using the bound Offset/Fetch variables.
type PagingFragment struct {
	OffsetVar string
	FetchVar  string
	Container
}

func (*PagingFragment) fragmentNode() {}

// ValueFragment substitutes the bound value of Variable in its plain
// string form (no quoting or escaping), failing with
// MissingVariableError if unbound. This
// differs from a plain `:name` reference inside Text, which is left
// untouched when unbound.
type ValueFragment struct {
	Variable string
}

func (*ValueFragment) fragmentNode() {}
