package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/intake/internal/assess"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "intake.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStore_CreateAndLoadSession(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	sess := assess.NewSession()
	require.NoError(t, st.CreateSession(ctx, sess))

	require.NoError(t, st.SaveAnswer(ctx, sess.ID(), "Q1", "Yes"))
	require.NoError(t, st.SaveAnswer(ctx, sess.ID(), "Q2", "some detail"))
	require.NoError(t, st.SaveAnswer(ctx, sess.ID(), "Q1", "No")) // upsert

	loaded, err := st.LoadSession(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, sess.ID(), loaded.ID())
	assert.Equal(t, map[string]string{"Q1": "No", "Q2": "some detail"}, loaded.Answers())
}

func TestStore_LoadMissingSession(t *testing.T) {
	st := openTestStore(t)

	_, err := st.LoadSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteAnswer(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	sess := assess.NewSession()
	require.NoError(t, st.CreateSession(ctx, sess))
	require.NoError(t, st.SaveAnswer(ctx, sess.ID(), "Q1", "Yes"))

	require.NoError(t, st.DeleteAnswer(ctx, sess.ID(), "Q1"))
	// Deleting an answer that does not exist is a no-op, like Clear.
	require.NoError(t, st.DeleteAnswer(ctx, sess.ID(), "Q99"))

	loaded, err := st.LoadSession(ctx, sess.ID())
	require.NoError(t, err)
	assert.Empty(t, loaded.Answers())
}

func TestStore_ListAndStatus(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	a := assess.NewSession()
	b := assess.NewSession()
	require.NoError(t, st.CreateSession(ctx, a))
	require.NoError(t, st.CreateSession(ctx, b))
	require.NoError(t, st.SaveAnswer(ctx, a.ID(), "Q1", "Yes"))

	infos, err := st.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byID := map[string]SessionInfo{}
	for _, info := range infos {
		byID[info.ID] = info
	}
	assert.Equal(t, 1, byID[a.ID()].Answered)
	assert.Equal(t, 0, byID[b.ID()].Answered)
	assert.Equal(t, StatusInProgress, byID[a.ID()].Status)

	require.NoError(t, st.SetStatus(ctx, a.ID(), StatusCompleted))
	assert.ErrorIs(t, st.SetStatus(ctx, "nope", StatusCompleted), ErrNotFound)

	n, err := st.ArchiveInProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n) // only b was still in progress

	infos, err = st.ListSessions(ctx)
	require.NoError(t, err)
	for _, info := range infos {
		switch info.ID {
		case a.ID():
			assert.Equal(t, StatusCompleted, info.Status)
		case b.ID():
			assert.Equal(t, StatusArchived, info.Status)
		}
	}
}

func TestStore_CreateSessionPersistsExistingAnswers(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	now := time.Now()
	sess := assess.Restore("restored-id", map[string]string{"Q1": "Yes"}, now, now)
	require.NoError(t, st.CreateSession(ctx, sess))

	loaded, err := st.LoadSession(ctx, "restored-id")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Q1": "Yes"}, loaded.Answers())
}
