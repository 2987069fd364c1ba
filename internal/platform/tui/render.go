package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dus-study/game-2048-model/internal/game"
	"github.com/dus-study/game-2048-model/internal/model"
)

const (
	tileWidth  = 7
	tileHeight = 3
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	overStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// tileColors maps a rank to a background color, cycling for very high ranks.
var tileColors = []string{
	"250", // rank 1 (2)
	"252", // rank 2 (4)
	"216", // rank 3 (8)
	"215", // rank 4 (16)
	"209", // rank 5 (32)
	"203", // rank 6 (64)
	"222", // rank 7 (128)
	"221", // rank 8 (256)
	"220", // rank 9 (512)
	"214", // rank 10 (1024)
	"208", // rank 11 (2048)
	"201", // rank 12+
}

// tileStyle returns the style for a tile of the given rank.
func tileStyle(r model.Rank) lipgloss.Style {
	idx := int(r) - 1
	if idx >= len(tileColors) {
		idx = len(tileColors) - 1
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.Color(tileColors[idx]))
}

// renderTile renders one cell.
func renderTile(r model.Rank) string {
	if r == 0 {
		return emptyTileStyle.Render("·")
	}
	return tileStyle(r).Render(strconv.Itoa(game.TileValue(r)))
}

// renderBoard renders the tile grid.
func renderBoard(rows [][]model.Rank) string {
	rendered := make([]string, len(rows))
	for i, row := range rows {
		tiles := make([]string, len(row))
		for j, r := range row {
			tiles[j] = renderTile(r)
		}
		rendered[i] = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}

// renderHUD renders the title and score line above the board.
func renderHUD(snap game.Snapshot, highScore int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("2048"))
	sb.WriteString("\n")
	sb.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d", snap.Score)))
	if highScore > 0 {
		sb.WriteString(hudStyle.Render(fmt.Sprintf("  Best: %d", highScore)))
	}
	sb.WriteString(hudStyle.Render(fmt.Sprintf("  Max: %d", snap.MaxValue)))
	return sb.String()
}

// renderStatus renders the game-over / win banner, empty while playing.
func renderStatus(snap game.Snapshot) string {
	switch snap.State {
	case game.StateGameOver:
		return overStyle.Render("Game over! Press r to restart")
	case game.StateWon:
		return wonStyle.Render("You made the winning tile! Keep going or press r to restart")
	}
	return ""
}
