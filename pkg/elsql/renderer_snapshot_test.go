package elsql

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	v := m.Run()

	dirty, err := snaps.Clean(m)
	if err != nil {
		fmt.Println("Error cleaning snaps:", err)
		os.Exit(1)
	}
	if dirty {
		fmt.Println("Some snapshots were outdated.")
		os.Exit(1)
	}

	os.Exit(v)
}

func TestSnapshotRendering_WhereAndOffsetFetch(t *testing.T) {
	src := "" +
		"@NAME(Orders)\n" +
		"  SELECT * FROM orders\n" +
		"  @WHERE\n" +
		"    @AND(:status)\n" +
		"      status = :status\n" +
		"    @AND(:kind = active)\n" +
		"      kind = 'ACTIVE'\n" +
		"  @OFFSETFETCH\n"
	bundle, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	t.Run("no params", func(t *testing.T) {
		got, err := bundle.GetSQL("Orders")
		require.NoError(t, err)
		snaps.MatchSnapshot(t, got)
	})

	t.Run("status only", func(t *testing.T) {
		got, err := bundle.GetSQL("Orders", NewParams().With("status", "shipped"))
		require.NoError(t, err)
		snaps.MatchSnapshot(t, got)
	})

	t.Run("status and matching kind", func(t *testing.T) {
		got, err := bundle.GetSQL("Orders", NewParams().
			With("status", "shipped").
			With("kind", "ACTIVE").
			With("offset", 20).
			With("fetch", 10))
		require.NoError(t, err)
		snaps.MatchSnapshot(t, got)
	})
}

func TestSnapshotRendering_LoopIn(t *testing.T) {
	src := "" +
		"@NAME(In)\n" +
		"  IN (\n" +
		"  @LOOP(:n)\n" +
		"    :var@LOOPINDEX\n" +
		"    @LOOPJOIN ,\n" +
		"  )\n"
	bundle, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	got, err := bundle.GetSQL("In", NewParams().
		With("n", 3).With("var0", "a").With("var1", "b").With("var2", "c"))
	require.NoError(t, err)
	snaps.MatchSnapshot(t, got)
}

func TestSnapshotRendering_LikeAndPaging(t *testing.T) {
	src := "" +
		"@NAME(Search)\n" +
		"  SELECT * FROM t\n" +
		"  @WHERE\n" +
		"    @AND(:name)\n" +
		"      @LIKE\n" +
		"        name LIKE :name\n" +
		"      @ENDLIKE\n" +
		"  @PAGING(:off,:limit)\n" +
		"    ORDER BY name\n" +
		"  @ENDPAGING\n"
	bundle, err := Parse(DefaultConfig{}, src)
	require.NoError(t, err)

	got, err := bundle.GetSQL("Search", NewParams().
		With("name", "smith%").With("off", 0).With("limit", 5))
	require.NoError(t, err)
	snaps.MatchSnapshot(t, got)
}
