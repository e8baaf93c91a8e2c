package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func openTestStore(c *qt.C) *Store {
	store, err := Open(filepath.Join(c.TempDir(), "test.db"))
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	c := qt.New(t)
	dbPath := filepath.Join(c.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	c.Assert(err, qt.IsNil)

	_, err = os.Stat(dbPath)
	c.Assert(err, qt.IsNil, qt.Commentf("database file was not created"))
	c.Assert(store.Close(), qt.IsNil)

	// Reopening runs the migrations again without error.
	store, err = Open(dbPath)
	c.Assert(err, qt.IsNil)
	c.Assert(store.Close(), qt.IsNil)
}

func TestStoreOpenExpandsHome(t *testing.T) {
	c := qt.New(t)
	home := c.TempDir()
	c.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	c.Assert(err, qt.IsNil)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".arcade", "scores.db"))
	c.Assert(err, qt.IsNil)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []ScoreEntry{
		{GameID: "blocks", Player: "ann", SessionID: "s1", Points: 100.5, Lines: 8, Level: 1, CreatedAt: base},
		{GameID: "blocks", Player: "bob", SessionID: "s2", Points: 50, Lines: 3, Level: 1, CreatedAt: base.Add(time.Minute)},
		{GameID: "blocks", Player: "ann", SessionID: "s3", Points: 212.25, Lines: 21, Level: 3, CreatedAt: base.Add(2 * time.Minute)},
		{GameID: "other", Player: "cid", Points: 500, CreatedAt: base},
	}
	for _, e := range entries {
		id, err := store.SaveScore(e)
		c.Assert(err, qt.IsNil)
		c.Assert(id > 0, qt.IsTrue)
	}

	scores, err := store.TopScores("blocks", 10)
	c.Assert(err, qt.IsNil)
	c.Assert(scores, qt.HasLen, 3)

	c.Assert(scores[0].Points, qt.Equals, 212.25)
	c.Assert(scores[0].Player, qt.Equals, "ann")
	c.Assert(scores[0].SessionID, qt.Equals, "s3")
	c.Assert(scores[0].Lines, qt.Equals, 21)
	c.Assert(scores[0].Level, qt.Equals, 3)
	c.Assert(scores[0].CreatedAt.Equal(base.Add(2*time.Minute)), qt.IsTrue, qt.Commentf("got %v", scores[0].CreatedAt))
	c.Assert(scores[1].Points, qt.Equals, 100.5)
	c.Assert(scores[2].Points, qt.Equals, 50.0)

	top1, err := store.TopScores("blocks", 1)
	c.Assert(err, qt.IsNil)
	c.Assert(top1, qt.HasLen, 1)

	other, err := store.TopScores("other", 0)
	c.Assert(err, qt.IsNil)
	c.Assert(other, qt.HasLen, 1)
	c.Assert(other[0].Level, qt.Equals, 0)
}

func TestStoreSaveDefaultsTime(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	before := time.Now().Add(-time.Second)
	_, err := store.SaveScore(ScoreEntry{GameID: "blocks", Points: 1})
	c.Assert(err, qt.IsNil)

	scores, err := store.TopScores("blocks", 1)
	c.Assert(err, qt.IsNil)
	c.Assert(scores[0].CreatedAt.After(before), qt.IsTrue, qt.Commentf("got %v", scores[0].CreatedAt))
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	_, err := store.SaveScore(ScoreEntry{Points: 10})
	c.Assert(err, qt.ErrorMatches, "storage: cannot save score: empty game id")
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	for _, p := range []string{"first", "second"} {
		_, err := store.SaveScore(ScoreEntry{GameID: "blocks", Player: p, Points: 42})
		c.Assert(err, qt.IsNil)
	}

	scores, err := store.TopScores("blocks", 10)
	c.Assert(err, qt.IsNil)
	c.Assert(scores[0].Player, qt.Equals, "first")
	c.Assert(scores[1].Player, qt.Equals, "second")
}

func TestStoreHighScore(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	high, err := store.HighScore("blocks")
	c.Assert(err, qt.IsNil)
	c.Assert(high, qt.Equals, 0.0)

	for _, p := range []float64{10, 30.5, 20} {
		_, err := store.SaveScore(ScoreEntry{GameID: "blocks", Points: p})
		c.Assert(err, qt.IsNil)
	}

	high, err = store.HighScore("blocks")
	c.Assert(err, qt.IsNil)
	c.Assert(high, qt.Equals, 30.5)
}

func TestStoreClearScores(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	for _, g := range []string{"blocks", "blocks", "other"} {
		_, err := store.SaveScore(ScoreEntry{GameID: g, Points: 5})
		c.Assert(err, qt.IsNil)
	}

	c.Assert(store.ClearScores("blocks"), qt.IsNil)

	scores, err := store.TopScores("blocks", 10)
	c.Assert(err, qt.IsNil)
	c.Assert(scores, qt.HasLen, 0)

	other, err := store.TopScores("other", 10)
	c.Assert(err, qt.IsNil)
	c.Assert(other, qt.HasLen, 1)
}

func TestStoreGameStats(t *testing.T) {
	c := qt.New(t)
	store := openTestStore(c)

	empty, err := store.GetGameStats("blocks")
	c.Assert(err, qt.IsNil)
	c.Assert(empty.GamesCount, qt.Equals, 0)
	c.Assert(empty.LastPlayed.IsZero(), qt.IsTrue)

	base := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	for i, e := range []ScoreEntry{
		{Points: 10, Lines: 2, Level: 1},
		{Points: 30, Lines: 12, Level: 2},
	} {
		e.GameID = "blocks"
		e.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := store.SaveScore(e)
		c.Assert(err, qt.IsNil)
	}

	stats, err := store.GetGameStats("blocks")
	c.Assert(err, qt.IsNil)
	c.Assert(stats.GamesCount, qt.Equals, 2)
	c.Assert(stats.HighScore, qt.Equals, 30.0)
	c.Assert(stats.AvgScore, qt.Equals, 20.0)
	c.Assert(stats.TotalLines, qt.Equals, int64(14))
	c.Assert(stats.MaxLevel, qt.Equals, 2)
	c.Assert(stats.LastPlayed.Equal(base.Add(time.Hour)), qt.IsTrue, qt.Commentf("got %v", stats.LastPlayed))

	all, err := store.GetAllGamesStats()
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 1)
	c.Assert(all["blocks"].GamesCount, qt.Equals, 2)
}

func TestParseTime(t *testing.T) {
	c := qt.New(t)
	want := time.Date(2026, 1, 2, 3, 4, 5, 600, time.UTC)

	c.Assert(parseTime(formatTime(want)).Equal(want), qt.IsTrue)
	c.Assert(parseTime([]byte(formatTime(want))).Equal(want), qt.IsTrue)
	c.Assert(parseTime(want.In(time.FixedZone("x", 3600))).Equal(want), qt.IsTrue)
	c.Assert(parseTime("2026-01-02 03:04:05").Equal(want.Truncate(time.Second)), qt.IsTrue)
	c.Assert(parseTime(nil).IsZero(), qt.IsTrue)
	c.Assert(parseTime("garbage").IsZero(), qt.IsTrue)
}
