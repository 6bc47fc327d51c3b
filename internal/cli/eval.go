package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gridhunt/gridhunt/internal/game"
	"github.com/gridhunt/gridhunt/internal/model"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <samples-dir>",
		Short: "Score the classifier against labeled sample boards",
		Long: `eval runs the board reader over every <n>.png in the samples
directory and compares the classified letters against the expected grid
in the matching <n>.txt (one row of letters per line).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			samples, err := filepath.Glob(filepath.Join(args[0], "*.png"))
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				return fmt.Errorf("no sample boards in %s", args[0])
			}

			bar := progressbar.Default(int64(len(samples)), "classifying")

			var tiles, mismatches int
			for _, sample := range samples {
				frame, err := loadPNG(sample)
				if err != nil {
					return err
				}

				grid, err := game.ReadBoardImage(frame, app.ClassifierService)
				if err != nil {
					return err
				}

				expected, err := loadExpected(strings.TrimSuffix(sample, ".png") + ".txt")
				if err != nil {
					return err
				}

				for row := range expected {
					for col := range expected[row] {
						tiles++
						got := grid.At(model.Position{Col: col, Row: row})
						if got != expected[row][col] {
							mismatches++
							fmt.Printf("%s (%d,%d): got %q want %q\n",
								filepath.Base(sample), col, row, got, expected[row][col])
						}
					}
				}

				_ = bar.Add(1)
			}

			fmt.Printf("\n%d/%d tiles correct\n", tiles-mismatches, tiles)
			if mismatches > 0 {
				return fmt.Errorf("%d misclassified tiles", mismatches)
			}
			return nil
		},
	}
}

// loadExpected parses a labeled grid file: one row of letters per line
func loadExpected(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]string, 0, len(line))
		for _, r := range line {
			row = append(row, strings.ToLower(string(r)))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
