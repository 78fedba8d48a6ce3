package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/launchkit-tools/cli/internal/history"
	"github.com/launchkit-tools/cli/internal/testutil"
)

func TestOpen_CreatesAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := history.Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	runs, err := history.List(db, 0)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestInsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)

	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	testutil.SeedRuns(t, db, []history.Run{
		{Target: "/bin/a", Mode: "si", Args: "x y", Spawned: 1, StartedAt: base},
		{Target: "/bin/b", Mode: "mi", Spawned: 2, Failed: 1, StartedAt: base.Add(time.Minute)},
	})

	runs, err := history.List(db, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	require.Equal(t, "/bin/b", runs[0].Target)
	require.Equal(t, 2, runs[0].Spawned)
	require.Equal(t, 1, runs[0].Failed)
	require.Equal(t, "/bin/a", runs[1].Target)
	require.Equal(t, "x y", runs[1].Args)
	require.True(t, runs[1].StartedAt.Equal(base))
}

func TestInsert_AssignsID(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := history.Insert(db, history.Run{
		Target:    "/bin/a",
		Mode:      "si",
		StartedAt: time.Now(),
	})
	require.NoError(t, err)

	runs, err := history.List(db, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.NotEmpty(t, runs[0].ID)
}

func TestList_Limit(t *testing.T) {
	db := testutil.NewTestDB(t)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		testutil.SeedRuns(t, db, []history.Run{
			{Target: "/bin/a", Mode: "si", StartedAt: base.Add(time.Duration(i) * time.Second)},
		})
	}

	runs, err := history.List(db, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
}
