package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dus-study/game-2048-model/internal/config"
	"github.com/dus-study/game-2048-model/internal/platform/tui"
	"github.com/dus-study/game-2048-model/internal/storage"
)

var flagResume bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - Restart (after the game ends)
  Q/Ctrl+C         - Quit (an unfinished game is autosaved)

Examples:
  2048 play
  2048 play --resume
  2048 play --seed 42
  2048 play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the autosaved game")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Probe the terminal size so the first frame is centered.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if flagResume {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --resume needs a working database")
			os.Exit(1)
		}
		saved, loadErr := store.LoadGame("autosave")
		if errors.Is(loadErr, storage.ErrNoSavedGame) {
			fmt.Fprintln(os.Stderr, "No autosaved game found, starting fresh.")
		} else if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading saved game: %v\n", loadErr)
			os.Exit(1)
		} else {
			if runErr := tui.RunResume(cfg, store, saved, width, height); runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				os.Exit(1)
			}
			return
		}
	}

	if runErr := tui.Run(cfg, store, flagSeed, width, height); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
