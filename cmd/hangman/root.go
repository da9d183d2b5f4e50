package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/telemetry"
)

// newRootCmd builds the command tree. Flags, HANGMAN_* environment
// variables and the config file all feed one viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	defaults := game.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "hangman",
		Short: "Guess the hidden word before the gallows is complete",
		Long: `Hangman is a terminal word-guessing game. Type a letter or a whole word
and press Enter. A wrong letter costs one stage, a wrong word costs two;
nine stages and the round is lost.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := initConfig(v); err != nil {
				return err
			}
			if err := setupLogging(v.GetString("log-file"), v.GetString("log-level")); err != nil {
				return err
			}
			if dotenvErr != nil {
				log.Debug().Err(dotenvErr).Msg(".env file not loaded")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGame(cmd.Context(), v)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.hangman.yaml)")
	flags.String("log-file", defaultLogFile(), "log file path; empty disables logging")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("words", "", "word list file (.txt, .yaml, .yml or .json); default is the built-in list")
	flags.Bool("daily", false, "play the word of the day")
	flags.String("daily-salt", defaults.DailySalt, "salt for the word of the day")
	flags.Int64("seed", 0, "random seed for word selection (0 picks one)")
	flags.String("word", "", "use this mystery word for every round")
	flags.Duration("reveal-delay", defaults.RevealDelay, "how long a finished round stays on screen")
	_ = v.BindPFlags(flags)

	cmd.AddCommand(newWordsCmd(v))
	return cmd
}

// defaultLogFile places the log in the user cache directory, falling back
// to the system temp directory.
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hangman", "hangman.log")
}

// initConfig loads configuration from the config file and environment.
// A missing default config file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("HANGMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.SetConfigFile(filepath.Join(home, ".hangman.yaml"))
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// configFromViper resolves the game configuration.
func configFromViper(v *viper.Viper) (game.Config, error) {
	cfg := game.Config{
		Seed:        v.GetInt64("seed"),
		Word:        v.GetString("word"),
		WordsFile:   v.GetString("words"),
		Daily:       v.GetBool("daily"),
		DailySalt:   v.GetString("daily-salt"),
		RevealDelay: v.GetDuration("reveal-delay"),
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// loadWords returns the registry for cfg.WordsFile, or the built-in list.
func loadWords(cfg game.Config) (*gamedata.WordRegistry, error) {
	if cfg.WordsFile != "" {
		return gamedata.LoadWordFileRegistry(cfg.WordsFile)
	}
	return gamedata.LoadWordRegistry()
}

// runGame wires configuration, telemetry and the word source into the game loop.
func runGame(ctx context.Context, v *viper.Viper) error {
	cfg, err := configFromViper(v)
	if err != nil {
		return err
	}

	registry, err := loadWords(cfg)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	log.Info().Int("words", registry.Count()).Str("file", cfg.WordsFile).Bool("daily", cfg.Daily).Msg("word list loaded")

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, func(err error) {
			log.Warn().Err(err).Msg("telemetry export")
		})
		if err != nil {
			// Continue without telemetry - game still works
			log.Warn().Err(err).Msg("telemetry setup failed, running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	g, err := game.New(cfg, game.NewWordSource(cfg, registry, time.Now))
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	return g.Run(ctx)
}
