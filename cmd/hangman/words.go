package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/hangman/internal/gamedata"
)

// newWordsCmd reports on the configured word list without starting the UI.
func newWordsCmd(v *viper.Viper) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Check the configured word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromViper(v)
			if err != nil {
				return err
			}
			registry, err := loadWords(cfg)
			if err != nil {
				return fmt.Errorf("load words: %w", err)
			}

			source := cfg.WordsFile
			if source == "" {
				source = "built-in"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d words (%s)\n", registry.Count(), source)

			if cfg.Word != "" {
				word := strings.ToUpper(cfg.Word)
				if registry.Contains(cfg.Word) {
					fmt.Fprintf(out, "%s is in the list\n", word)
				} else {
					fmt.Fprintf(out, "%s is not in the list\n", word)
				}
			}

			if cfg.Daily {
				now := time.Now()
				idx := gamedata.DailyIndex(now, cfg.DailySalt, registry.Count())
				fmt.Fprintf(out, "daily %s: word #%d\n", gamedata.DateKey(now), idx+1)
			}

			if list {
				for _, w := range registry.All() {
					fmt.Fprintln(out, w)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print every word")
	return cmd
}
