// Package tui provides the Bubble Tea terminal UI and the Wish SSH server
// for playing the game.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dus-study/game-2048-model/internal/config"
	"github.com/dus-study/game-2048-model/internal/game"
	"github.com/dus-study/game-2048-model/internal/model"
	"github.com/dus-study/game-2048-model/internal/storage"
)

// autosaveSlot is the slot a quit-in-progress game is saved under.
const autosaveSlot = "autosave"

// Model is the Bubble Tea model for a game session. The game is turn-based,
// so there is no tick loop: the model reacts to key events only.
type Model struct {
	game  *game.Game
	cfg   config.Config
	store *storage.Store // may be nil, everything degrades gracefully

	keys KeyMap
	help help.Model

	width     int
	height    int
	highScore int
	quitting  bool
	saved     bool // score recorded for the current game over
}

// NewModel creates a model for a fresh game with the given seed.
// Seed 0 means derive one from the current time.
func NewModel(cfg config.Config, store *storage.Store, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newModel(cfg, store, game.New(cfg, seed))
}

// NewResumeModel creates a model continuing a previously saved game.
func NewResumeModel(cfg config.Config, store *storage.Store, saved storage.SavedGame) Model {
	g := game.Resume(cfg, time.Now().UnixNano(), saved.Board, saved.Score)
	return newModel(cfg, store, g)
}

func newModel(cfg config.Config, store *storage.Store, g *game.Game) Model {
	m := Model{
		game:  g,
		cfg:   cfg,
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	if store != nil {
		if high, err := store.HighScore(); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		snap := m.game.Snapshot()
		if snap.State != game.StatePlaying {
			m.recordScore()
			m.game = game.New(m.cfg, time.Now().UnixNano())
			m.saved = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.move(model.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.move(model.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.move(model.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.move(model.DirRight)
	}
	return m, nil
}

// move applies one slide and records the score once the game ends.
func (m *Model) move(dir model.Direction) {
	if !m.game.Move(dir) {
		return
	}
	if m.game.Over() {
		m.recordScore()
	}
}

// recordScore saves the finished game's score, once, best-effort.
func (m *Model) recordScore() {
	if m.saved || m.store == nil || m.game.Score() == 0 {
		return
	}
	snap := m.game.Snapshot()
	//nolint:errcheck // best-effort, the game continues regardless
	m.store.SaveScore(snap.Score, snap.MaxValue)
	if snap.Score > m.highScore {
		m.highScore = snap.Score
	}
	m.saved = true
}

// finish persists state on quit: an unfinished game goes to the autosave
// slot, a finished one gets its score recorded and the stale autosave
// removed.
func (m *Model) finish() {
	if m.store == nil {
		return
	}
	if m.game.Over() {
		m.recordScore()
		//nolint:errcheck // a stale autosave is harmless
		m.store.DeleteGame(autosaveSlot)
		return
	}
	//nolint:errcheck // best-effort, losing the autosave only loses the resume
	m.store.SaveGame(autosaveSlot, m.game.Board(), m.game.Score())
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()

	sections := []string{
		renderHUD(snap, m.highScore),
		renderBoard(snap.Rows),
	}
	if status := renderStatus(snap); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Run starts a Bubble Tea program for a fresh game. Width and height size
// the first frame; Bubble Tea keeps them current from there.
func Run(cfg config.Config, store *storage.Store, seed int64, width, height int) error {
	m := NewModel(cfg, store, seed)
	m.width = width
	m.height = height
	return runProgram(m)
}

// RunResume starts a Bubble Tea program continuing a saved game.
func RunResume(cfg config.Config, store *storage.Store, saved storage.SavedGame, width, height int) error {
	m := NewResumeModel(cfg, store, saved)
	m.width = width
	m.height = height
	return runProgram(m)
}

func runProgram(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
