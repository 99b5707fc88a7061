// Command gridkit exposes the gridkit helpers on puzzle input files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/gridkit/direction"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/puzzle"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose  bool
	inputDir string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gridkit",
	Short: "Grid and puzzle helpers",
	Long: `gridkit reads puzzle inputs from <dir>/<name>.txt and runs the
library helpers on them: rendering sparse grids, bounding boxes, region
counting, turtle walks and MD5 digests.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var md5Cmd = &cobra.Command{
	Use:   "md5 [text]",
	Short: "Print the hex MD5 digest of text",
	Args:  cobra.ExactArgs(1),
	RunE:  runMD5,
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Render the non-blank cells of an input file",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var boundsCmd = &cobra.Command{
	Use:   "bounds [name]",
	Short: "Print the bounding box of the non-blank cells of an input file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBounds,
}

var islandsCmd = &cobra.Command{
	Use:   "islands [name]",
	Short: "Count connected regions of non-blank cells",
	Long: `Counts connected regions of non-blank cells using 4-connectivity,
or 8-connectivity with --diag. With --bridge the minimal number of blank
cells joining the first two regions is printed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runIslands,
}

var walkCmd = &cobra.Command{
	Use:   "walk [step...]",
	Short: "Walk turtle steps such as R4 U2 from the origin",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWalk,
}

var (
	cellWidth int
	diagonal  bool
	bridge    bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&inputDir, "dir", "d", puzzle.DefaultDir, "Directory holding <name>.txt inputs")

	showCmd.Flags().IntVarP(&cellWidth, "width", "w", puzzle.DefaultCellWidth, "Padding width for missing cells")
	islandsCmd.Flags().BoolVar(&diagonal, "diag", false, "Treat diagonal cells as connected")
	islandsCmd.Flags().BoolVar(&bridge, "bridge", false, "Report the cheapest bridge between regions 0 and 1")

	rootCmd.AddCommand(md5Cmd, showCmd, boundsCmd, islandsCmd, walkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isBlank marks the cells that input files use for empty space.
func isBlank(r rune) bool {
	return r == '.' || r == ' '
}

func loadInput(name string) ([]string, error) {
	lines, err := puzzle.ReadInput(name, puzzle.WithDir(inputDir))
	if err != nil {
		return nil, err
	}
	logger.Debug("Input loaded",
		zap.String("path", puzzle.InputPath(name, puzzle.WithDir(inputDir))),
		zap.Int("lines", len(lines)))
	return lines, nil
}

func runMD5(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), puzzle.MD5(args[0]))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if cellWidth < 0 {
		return fmt.Errorf("--width must be >= 0, got %d", cellWidth)
	}
	lines, err := loadInput(args[0])
	if err != nil {
		return err
	}
	cells := puzzle.ParseSparse(lines, isBlank)
	logger.Debug("Rendering grid", zap.Int("cells", len(cells)))
	return puzzle.Render(cmd.OutOrStdout(), cells, puzzle.WithCellWidth(cellWidth))
}

func runBounds(cmd *cobra.Command, args []string) error {
	lines, err := loadInput(args[0])
	if err != nil {
		return err
	}
	cells := puzzle.ParseSparse(lines, isBlank)
	ps := make([]grid.Position, 0, len(cells))
	for p := range cells {
		ps = append(ps, p)
	}
	b, err := grid.MinMax(ps)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "min %v max %v (%dx%d)\n", b.Min, b.Max, b.Rows(), b.Cols())
	return nil
}

func runIslands(cmd *cobra.Command, args []string) error {
	lines, err := loadInput(args[0])
	if err != nil {
		return err
	}
	m, err := toMatrix(lines)
	if err != nil {
		return err
	}
	conn := gridgraph.Conn4
	if diagonal {
		conn = gridgraph.Conn8
	}
	gg, err := gridgraph.New(m, func(r rune) bool { return !isBlank(r) }, conn)
	if err != nil {
		return err
	}
	comps := gg.Components()
	logger.Debug("Components labelled", zap.Int("count", len(comps)), zap.Bool("diagonal", diagonal))
	fmt.Fprintf(cmd.OutOrStdout(), "islands: %d\n", len(comps))

	if bridge {
		path, cost, err := gg.Bridge(0, 1)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "bridge: %d %v\n", cost, path)
	}
	return nil
}

func runWalk(cmd *cobra.Command, args []string) error {
	steps := make([]direction.Step, 0, len(args))
	for _, field := range args {
		for _, s := range strings.Split(field, ",") {
			step, err := direction.ParseStep(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			steps = append(steps, step)
		}
	}
	end := direction.Walk(grid.Point64{}, steps)
	logger.Debug("Walk finished", zap.Int("steps", len(steps)), zap.Int64("x", end.X), zap.Int64("y", end.Y))
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", end.X, end.Y)
	return nil
}

// toMatrix converts lines to a rune matrix, padding short lines with
// blanks so that ragged trailing whitespace does not break rectangularity.
func toMatrix(lines []string) ([][]rune, error) {
	width := 0
	m := make([][]rune, len(lines))
	for i, l := range lines {
		m[i] = []rune(l)
		width = max(width, len(m[i]))
	}
	for i := range m {
		for len(m[i]) < width {
			m[i] = append(m[i], ' ')
		}
	}
	if err := grid.ValidateRect(m); err != nil {
		return nil, fmt.Errorf("input is not a grid: %w", err)
	}
	return m, nil
}
