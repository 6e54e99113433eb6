package elsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapParams_IsEmpty(t *testing.T) {
	assert.True(t, NewParams().IsEmpty())
	assert.True(t, NewMapParams(nil).IsEmpty())
	assert.False(t, NewMapParams(map[string]any{"a": "x"}).IsEmpty())
}

func TestNewMapParams_BuildsFromExistingMap(t *testing.T) {
	params := NewMapParams(map[string]any{"kind": "ACTIVE"})
	assert.True(t, params.HasValue("kind"))
	assert.Equal(t, "ACTIVE", params.GetValue("kind"))

	b, err := Parse(DefaultConfig{}, "@NAME(Sel)\n  @IF(:kind = 'ACTIVE')\n    SELECT 1\n")
	require.NoError(t, err)

	got, err := b.GetSQL("Sel", params)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", canon(got))
}

func TestBundle_GetSQL_EmptyMapParamsBehavesLikeNoParams(t *testing.T) {
	b, err := Parse(DefaultConfig{}, "@NAME(Sel)\n  SELECT 1\n  @WHERE\n    @AND(:a)\n      a = :a\n")
	require.NoError(t, err)

	got, err := b.GetSQL("Sel", NewMapParams(nil))
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", canon(got))
}
