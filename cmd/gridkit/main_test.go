package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/puzzle"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setup points the global flags at a temp workspace holding the given inputs.
func setup(t *testing.T, inputs map[string]string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()

	dir := t.TempDir()
	for name, body := range inputs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte(body), 0o644))
	}
	inputDir = dir
	cellWidth, diagonal, bridge = puzzle.DefaultCellWidth, false, false
	t.Cleanup(func() {
		inputDir = puzzle.DefaultDir
		cellWidth, diagonal, bridge = puzzle.DefaultCellWidth, false, false
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestMD5Cmd(t *testing.T) {
	cmd, out := setup(t, nil)
	require.NoError(t, runMD5(cmd, []string{"abc"}))
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out.String())
}

func TestShowCmd(t *testing.T) {
	cmd, out := setup(t, map[string]string{"map": "..#\n#..\n"})
	require.NoError(t, runShow(cmd, []string{"map"}))
	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "number positions in grid: 2", lines[0])
	require.Equal(t, "  #", lines[1])
	require.Equal(t, "#  ", lines[2])
}

func TestShowCmd_Errors(t *testing.T) {
	cmd, _ := setup(t, map[string]string{"blank": "...\n"})
	require.ErrorIs(t, runShow(cmd, []string{"nope"}), puzzle.ErrInputNotFound)
	require.ErrorIs(t, runShow(cmd, []string{"blank"}), grid.ErrEmptySet)

	cellWidth = -1
	require.Error(t, runShow(cmd, []string{"blank"}))
}

func TestBoundsCmd(t *testing.T) {
	cmd, out := setup(t, map[string]string{"b": "....\n.#..\n...#\n"})
	require.NoError(t, runBounds(cmd, []string{"b"}))
	require.Equal(t, "min (1,1) max (2,3) (2x3)\n", out.String())
}

func TestIslandsCmd(t *testing.T) {
	input := map[string]string{"isl": "#.#\n.#.\n"}

	cmd, out := setup(t, input)
	require.NoError(t, runIslands(cmd, []string{"isl"}))
	require.Equal(t, "islands: 3\n", out.String())

	cmd, out = setup(t, input)
	diagonal = true
	require.NoError(t, runIslands(cmd, []string{"isl"}))
	require.Equal(t, "islands: 1\n", out.String())
}

func TestIslandsCmd_Bridge(t *testing.T) {
	cmd, out := setup(t, map[string]string{"isl": "#..#"})
	bridge = true
	require.NoError(t, runIslands(cmd, []string{"isl"}))
	require.Equal(t, "islands: 2\nbridge: 2 [(0,0) (0,1) (0,2) (0,3)]\n", out.String())
}

func TestWalkCmd(t *testing.T) {
	cmd, out := setup(t, nil)
	require.NoError(t, runWalk(cmd, []string{"R4,U4", "L3", "D1"}))
	require.Equal(t, "1 3\n", out.String())

	require.ErrorIs(t, runWalk(cmd, []string{"Q1"}), direction.ErrInvalidDirection)
	require.ErrorIs(t, runWalk(cmd, []string{"R1x"}), direction.ErrInvalidStep)

	out.Reset()
	require.NoError(t, runWalk(cmd, []string{"R3000000000", "D5000000000"}))
	require.Equal(t, "3000000000 -5000000000\n", out.String())
}

func TestToMatrix(t *testing.T) {
	m, err := toMatrix([]string{"ab", "c"})
	require.NoError(t, err)
	require.Equal(t, [][]rune{[]rune("ab"), []rune("c ")}, m)

	_, err = toMatrix(nil)
	require.ErrorIs(t, err, grid.ErrEmptyMatrix)
}

// TestRootCmd_Wiring runs the real command tree end to end.
func TestRootCmd_Wiring(t *testing.T) {
	_, _ = setup(t, nil)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"md5", "abc"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out.String())
}
