package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "blocks", "Blocks", 80, 24)
	v := m.View()
	assert.Contains(t, v, "HIGH SCORES - Blocks")
	assert.Contains(t, v, "No scores recorded yet.")
}

func TestScoreboardRowsAndReload(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveScore(storage.ScoreEntry{GameID: "blocks", Player: "ana", Points: 1234.5, Lines: 40, Level: 5})
	require.NoError(t, err)
	_, err = store.SaveScore(storage.ScoreEntry{GameID: "blocks", Points: 10, Lines: 1, Level: 1})
	require.NoError(t, err)

	m := NewScoreboardModel(store, "blocks", "Blocks", 100, 30)
	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"#1", "ana", "1,234.5"}, []string(rows[0][:3]))
	assert.Equal(t, "-", rows[1][1])

	_, err = store.SaveScore(storage.ScoreEntry{GameID: "blocks", Player: "bo", Points: 5000})
	require.NoError(t, err)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(ScoreboardModel)
	rows = m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "bo", rows[0][1])
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "blocks", "Blocks", 80, 24)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
