package elsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResource_BasicNamedFragment(t *testing.T) {
	src := "@NAME(Sel)\n  SELECT 1\n"
	names, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)
	require.Contains(t, names, "Sel")

	frag := names["Sel"]
	require.Len(t, frag.Children, 1)
	text, ok := frag.Children[0].(*TextFragment)
	require.True(t, ok)
	assert.Equal(t, "SELECT 1", text.Text)
}

func TestParseResource_CommentsAndBlankLinesDropped(t *testing.T) {
	src := "@NAME(Sel)\n-- a comment\n\n  SELECT 1\n"
	names, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)
	require.Len(t, names["Sel"].Children, 1)
}

func TestParseResource_IndentNesting(t *testing.T) {
	src := "" +
		"@NAME(Sel)\n" +
		"  SELECT * FROM t\n" +
		"  @WHERE\n" +
		"    @AND(:a)\n" +
		"      a = :a\n"
	names, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)

	root := names["Sel"]
	require.Len(t, root.Children, 2)

	where, ok := root.Children[1].(*WhereFragment)
	require.True(t, ok)
	require.Len(t, where.Children, 1)

	and, ok := where.Children[0].(*ConjunctionFragment)
	require.True(t, ok)
	assert.Equal(t, "a", and.Variable)
	assert.False(t, and.HasMatch)
	require.Len(t, and.Children, 1)
}

func TestParseResource_DedentClosesMultipleFrames(t *testing.T) {
	src := "" +
		"@NAME(Sel)\n" +
		"  @WHERE\n" +
		"    @AND(:a)\n" +
		"      a = :a\n" +
		"  SELECT 2\n"
	names, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)

	root := names["Sel"]
	require.Len(t, root.Children, 2)
	_, ok := root.Children[1].(*TextFragment)
	assert.True(t, ok, "SELECT 2 should be a sibling of @WHERE, not nested under @AND")
}

func TestParseResource_MatchValuePredicate(t *testing.T) {
	src := "@NAME(Sel)\n  @IF(:kind = active)\n    x = 1\n"
	names, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)

	ifFrag, ok := names["Sel"].Children[0].(*IfFragment)
	require.True(t, ok)
	assert.Equal(t, "kind", ifFrag.Variable)
	assert.True(t, ifFrag.HasMatch)
	assert.Equal(t, "active", ifFrag.MatchValue)
}

func TestParseResource_Loop(t *testing.T) {
	src := "" +
		"@NAME(In)\n" +
		"  IN (\n" +
		"  @LOOP(:n)\n" +
		"    :var@LOOPINDEX\n" +
		"    @LOOPJOIN ,\n" +
		"  )\n"
	names, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)

	root := names["In"]
	require.Len(t, root.Children, 3)

	loop, ok := root.Children[1].(*LoopFragment)
	require.True(t, ok)
	assert.Equal(t, "n", loop.Variable)
	require.Len(t, loop.Children, 2)

	join, ok := loop.Children[1].(*LoopJoinFragment)
	require.True(t, ok)
	assert.Equal(t, ",", join.Text)
}

func TestParseResource_UnknownDirectiveIsParseError(t *testing.T) {
	src := "@NAME(Sel)\n  @BOGUS\n"
	_, err := ParseResource(DefaultConfig{}, 2, src)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.FileIndex)
	assert.Equal(t, 2, perr.Line)
}

func TestParseResource_NameMustNotBeIndented(t *testing.T) {
	src := "@NAME(Sel)\n  @NAME(Nested)\n"
	_, err := ParseResource(DefaultConfig{}, 0, src)
	require.Error(t, err)
}

func TestParseResource_UnbalancedParens(t *testing.T) {
	src := "@NAME(Sel)\n  @AND(:a\n    x = 1\n"
	_, err := ParseResource(DefaultConfig{}, 0, src)
	require.Error(t, err)
}

func TestParseResource_MissingColonOnVariable(t *testing.T) {
	src := "@NAME(Sel)\n  @AND(a)\n    x = 1\n"
	_, err := ParseResource(DefaultConfig{}, 0, src)
	require.Error(t, err)
}

func TestParseResource_EmptyBlockIsParseError(t *testing.T) {
	src := "@NAME(Sel)\n  @WHERE\n  SELECT 1\n"
	_, err := ParseResource(DefaultConfig{}, 0, src)
	require.Error(t, err)
}

func TestParseResource_EmptyNameBlockIsParseError(t *testing.T) {
	src := "@NAME(Sel)\n@NAME(Other)\n  SELECT 1\n"
	_, err := ParseResource(DefaultConfig{}, 0, src)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseResource_EmptyNameBlockAtEndOfResourceIsParseError(t *testing.T) {
	src := "@NAME(Sel)\n"
	_, err := ParseResource(DefaultConfig{}, 0, src)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseResource_DeterministicAcrossRuns(t *testing.T) {
	src := "@NAME(Sel)\n  SELECT * FROM t\n  @WHERE\n    @AND(:a)\n      a = :a\n"
	first, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)
	second, err := ParseResource(DefaultConfig{}, 0, src)
	require.NoError(t, err)
	assert.Equal(t, first["Sel"].Children, second["Sel"].Children)
}
