package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDictCmd() *cobra.Command {
	var fromStorage bool

	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Load the dictionary and print its stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}

			if fromStorage {
				err = app.DictionaryService.LoadFromStorage(cmd.Context())
			} else {
				err = app.DictionaryService.LoadFromFile(cmd.Context(), cfg.DictionaryPath)
			}
			if err != nil {
				return err
			}

			fmt.Printf("loaded: %v\nwords:  %d\n",
				app.DictionaryService.IsLoaded(),
				app.DictionaryService.WordCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStorage, "from-storage", false, "Load from storage instead of the word list file")
	return cmd
}
