package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/randalmurphal/pathgraph/pkg/pathgraph"
	"github.com/randalmurphal/pathgraph/pkg/pathgraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) store.Store

// sampleReport builds a path report for tests.
func sampleReport(searchID string) store.Report {
	return store.Report{
		SearchID:   searchID,
		Kind:       store.KindPaths,
		StartState: "a",
		Paths: []pathgraph.Path{
			{
				States:      []string{"A", "B", "C"},
				Rules:       []string{"r1", "r2"},
				FailedRules: [][]string{{}, {"other"}},
			},
		},
	}
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		report := sampleReport("search-1")
		require.NoError(t, st.Save(report))

		loaded, err := st.Load("search-1")
		require.NoError(t, err)
		assert.Equal(t, report.SearchID, loaded.SearchID)
		assert.Equal(t, report.Kind, loaded.Kind)
		assert.Equal(t, report.StartState, loaded.StartState)
		assert.Equal(t, report.Paths, loaded.Paths)
		assert.False(t, loaded.CreatedAt.IsZero())
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		_, err := st.Load("search-nonexistent")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		first := sampleReport("search-1")
		require.NoError(t, st.Save(first))

		second := sampleReport("search-1")
		second.Kind = store.KindLoops
		second.Paths = nil
		second.Loops = []pathgraph.Loop{{States: []string{"A", "B", "A"}, LoopState: "A"}}
		require.NoError(t, st.Save(second))

		loaded, err := st.Load("search-1")
		require.NoError(t, err)
		assert.Equal(t, store.KindLoops, loaded.Kind)
		assert.Empty(t, loaded.Paths)
		assert.Equal(t, second.Loops, loaded.Loops)
	})

	t.Run(name+"/Save_RequiresSearchID", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		err := st.Save(store.Report{Kind: store.KindPaths})
		assert.ErrorIs(t, err, store.ErrSearchIDRequired)
	})

	t.Run(name+"/List_NewestFirst", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		older := sampleReport("search-old")
		older.CreatedAt = time.Now().UTC().Add(-time.Hour)
		require.NoError(t, st.Save(older))

		newer := sampleReport("search-new")
		newer.CreatedAt = time.Now().UTC()
		require.NoError(t, st.Save(newer))

		infos, err := st.List()
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "search-new", infos[0].SearchID)
		assert.Equal(t, "search-old", infos[1].SearchID)
		assert.Greater(t, infos[0].Size, int64(0))
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		infos, err := st.List()
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		st := factory(t)
		defer st.Close()

		require.NoError(t, st.Save(sampleReport("search-1")))
		require.NoError(t, st.Delete("search-1"))

		_, err := st.Load("search-1")
		assert.ErrorIs(t, err, store.ErrNotFound)

		// Deleting a missing report is not an error.
		assert.NoError(t, st.Delete("search-1"))
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		st := factory(t)
		require.NoError(t, st.Close())

		assert.ErrorIs(t, st.Save(sampleReport("s")), store.ErrStoreClosed)
		_, err := st.Load("s")
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		_, err = st.List()
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		assert.ErrorIs(t, st.Delete("s"), store.ErrStoreClosed)
	})
}

// TestMemoryStore_Contract runs the contract suite against MemoryStore.
func TestMemoryStore_Contract(t *testing.T) {
	storeContractTest(t, "memory", func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})
}

// TestSQLiteStore_Contract runs the contract suite against SQLiteStore.
func TestSQLiteStore_Contract(t *testing.T) {
	storeContractTest(t, "sqlite", func(t *testing.T) store.Store {
		st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "reports.db"))
		require.NoError(t, err)
		return st
	})
}

// TestSQLiteStore_Persistence verifies reports survive reopening the file.
func TestSQLiteStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")

	first, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(sampleReport("search-1")))
	require.NoError(t, first.Close())

	second, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load("search-1")
	require.NoError(t, err)
	assert.Equal(t, "search-1", loaded.SearchID)
}
