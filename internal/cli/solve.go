package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridhunt/gridhunt/internal/game"
)

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <screenshot.png>",
		Short: "Solve a saved board screenshot offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			if err := app.DictionaryService.LoadFromFile(cmd.Context(), cfg.DictionaryPath); err != nil {
				return err
			}

			frame, err := loadPNG(args[0])
			if err != nil {
				return err
			}

			grid, err := game.ReadBoardImage(frame, app.ClassifierService)
			if err != nil {
				return err
			}

			for _, row := range grid.Cells {
				for _, cell := range row {
					fmt.Print(cell)
				}
				fmt.Println()
			}
			fmt.Println()

			words := app.SolverService.FindAllWords(grid)
			for _, w := range words {
				fmt.Printf("%-16s", w.Text)
				for _, p := range w.Path {
					fmt.Printf(" (%d,%d)", p.Col, p.Row)
				}
				fmt.Println()
			}
			fmt.Printf("\n%d words\n", len(words))
			return nil
		},
	}
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
