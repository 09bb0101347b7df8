package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shapematch/internal/storage"
)

func TestScoreRow(t *testing.T) {
	e := storage.ScoreEntry{
		Score:     4,
		Placed:    4,
		Total:     6,
		EndReason: "timeout",
		Duration:  12*time.Second + 40*time.Millisecond,
		CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}

	want := []string{"#3", "4", "4/6", "timeout", "12.0s", "Jan 02 15:04"}
	got := ScoreRow(3, e)
	if len(got) != len(want) {
		t.Fatalf("ScoreRow() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, expected %q", i, got[i], want[i])
		}
	}

	if row := ScoreRow(1, storage.ScoreEntry{}); row[5] != "" {
		t.Errorf("zero time should render an empty date, got %q", row[5])
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "shapes", "Shape Match", 80, 24)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("empty scoreboard should show the placeholder")
	}
	if !strings.Contains(view, "Shape Match") {
		t.Error("scoreboard should show the game title")
	}
}

func TestScoreboardLoadsAndRefreshes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRound("shapes", storage.Round{Score: 2, Placed: 2, Total: 6, EndReason: "timeout"})
	store.SaveRound("shapes", storage.Round{Score: 5, Placed: 5, Total: 6, EndReason: "cancelled"})

	m := NewScoreboardModel(store, "shapes", "Shape Match", 80, 24)
	if len(m.scores) != 2 || m.best != 5 {
		t.Fatalf("loaded %d scores, best %d; expected 2 and 5", len(m.scores), m.best)
	}
	if !strings.Contains(m.View(), "Best: 5") {
		t.Error("View() should show the best score")
	}

	store.SaveRound("shapes", storage.Round{Score: 6, Placed: 6, Total: 6, EndReason: "timeout"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(ScoreboardModel)
	if len(m.scores) != 3 || m.best != 6 {
		t.Errorf("after reload: %d scores, best %d; expected 3 and 6", len(m.scores), m.best)
	}
}

func TestScoreboardNarrowDropsDate(t *testing.T) {
	m := NewScoreboardModel(nil, "shapes", "Shape Match", 40, 20)
	if m.cols != 5 {
		t.Errorf("narrow layout has %d columns, expected 5", m.cols)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(ScoreboardModel)
	if m.cols != 6 {
		t.Errorf("wide layout has %d columns, expected 6", m.cols)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "shapes", "Shape Match", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) {
		t.Error("q should quit the scoreboard")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View() should be empty once quitting")
	}
}
