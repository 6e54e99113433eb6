package elsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario5_LoopExpansion(t *testing.T) {
	src := "" +
		"@NAME(In)\n" +
		"  IN (\n" +
		"  @LOOP(:n)\n" +
		"    :var@LOOPINDEX\n" +
		"    @LOOPJOIN ,\n" +
		"  )\n"
	b, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	params := NewParams().With("n", 3).With("var0", "a").With("var1", "b").With("var2", "c")
	got, err := b.GetSQL("In", params)
	require.NoError(t, err)

	canonNoSpace := strings.ReplaceAll(canon(got), " ", "")
	assert.Equal(t, "IN(a,b,c)", canonNoSpace)
}

func TestLoop_DefaultSeparatorWithoutLoopJoin(t *testing.T) {
	src := "@NAME(In)\n  @LOOP(:n)\n    :var@LOOPINDEX\n"
	b, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	params := NewParams().With("n", 2).With("var0", "a").With("var1", "b")
	got, err := b.GetSQL("In", params)
	require.NoError(t, err)
	assert.Equal(t, "a, b", canon(got))
}

func TestLoop_MissingCountVariableFails(t *testing.T) {
	b, err := Parse(DefaultConfig{}, "@NAME(In)\n  @LOOP(:n)\n    x\n")
	require.NoError(t, err)

	_, err = b.GetSQL("In")
	require.Error(t, err)
	var mv *MissingVariableError
	require.ErrorAs(t, err, &mv)
}

func TestLoop_NonIntegerCountFails(t *testing.T) {
	b, err := Parse(DefaultConfig{}, "@NAME(In)\n  @LOOP(:n)\n    x\n")
	require.NoError(t, err)

	_, err = b.GetSQL("In", NewParams().With("n", "not-a-number"))
	require.Error(t, err)
	var te *TypeError
	require.ErrorAs(t, err, &te)
}

func TestLoop_PredicateDecorationPrefersLoopIndexedName(t *testing.T) {
	src := "" +
		"@NAME(In)\n" +
		"  @LOOP(:n)\n" +
		"    @IF(:active)\n" +
		"      y@LOOPINDEX\n"
	b, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	// active0 = true and neither active1 nor the bare "active" is
	// bound, so only iteration 0 (where the decorated name resolves)
	// emits its body. The default ", " separator is still written before
	// iteration 1, whose body is empty.
	params := NewParams().With("n", 2).With("active0", true)
	got, err := b.GetSQL("In", params)
	require.NoError(t, err)
	assert.Equal(t, "y0,", canon(got))
}

func TestLoop_NestedLoopIndexTokens(t *testing.T) {
	src := "" +
		"@NAME(Grid)\n" +
		"  @LOOP(:outer)\n" +
		"    @LOOP(:inner)\n" +
		"      r@LOOPINDEX2c@LOOPINDEX\n"
	b, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	params := NewParams().With("outer", 2).With("inner", 2)
	got, err := b.GetSQL("Grid", params)
	require.NoError(t, err)
	// Neither loop has a @LOOPJOIN override, so both join their
	// iterations with the default ", " separator.
	assert.Equal(t, "r0c0, r0c1, r1c0, r1c1", canon(got))
}
