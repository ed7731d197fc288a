package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func newMenu(initial string) MenuModel {
	m := NewMenuModel(initial)
	m.items = []registry.GameInfo{
		{ID: "invaders", Title: "Invaders"},
		{ID: "invaders_endless", Title: "Invaders (Endless)"},
	}
	return m
}

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	m := press(newMenu(""),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown}, // clamped at the last item
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	res := m.Result()
	if res.Quit {
		t.Fatal("Result().Quit = true, expected a selection")
	}
	if res.GameID != "invaders_endless" {
		t.Errorf("GameID = %q, expected invaders_endless", res.GameID)
	}
	if res.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, expected hard", res.Difficulty)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := press(newMenu("easy"), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Result().Difficulty; got != "hard" {
		t.Errorf("Difficulty = %q, expected hard", got)
	}
}

func TestMenuQuit(t *testing.T) {
	m := press(newMenu(""), runeKey('q'))
	if !m.Result().Quit {
		t.Error("Result().Quit = false after q")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText = %q, expected unchanged", got)
	}
}
