package cmd

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugCommand_PrintsFragmentTree(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, "orders.elsql", ""+
		"@NAME(Sel)\n"+
		"  SELECT 1\n"+
		"  @IF(:flag)\n"+
		"    AND x = 1\n")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	debugDialect = ""
	cmd := &cobra.Command{Use: "debug", RunE: runDebug}
	output := captureStdout(t, func() {
		cmd.SetArgs([]string{"orders", "Sel"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, output, "NameFragment")
	assert.Contains(t, output, "IfFragment")
}

func TestDebugCommand_UnknownFragmentFails(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, "orders.elsql", "@NAME(Sel)\n  SELECT 1\n")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(cwd)) }()

	debugDialect = ""
	cmd := &cobra.Command{Use: "debug", RunE: runDebug}
	cmd.SetArgs([]string{"orders", "Nope"})
	cmd.SilenceErrors = true
	err = cmd.Execute()
	require.Error(t, err)
}
