package progress

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/logging"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/Thereal-Vadim/Word-Game/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingRecordYieldsEmpty(t *testing.T) {
	store := NewStore(repository.NewFileProgressRepo(filepath.Join(t.TempDir(), "progress.json")), zerolog.Nop())

	rec := store.Load(context.Background())
	require.NotNil(t, rec)
	assert.Empty(t, rec.StarsBySubLevel)
	assert.Zero(t, rec.CumulativeScore)
}

func TestLoad_CorruptRecordYieldsEmptyAndWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var buf bytes.Buffer
	store := NewStore(repository.NewFileProgressRepo(path), logging.New(&buf, "debug"))

	rec := store.Load(context.Background())
	assert.Empty(t, rec.StarsBySubLevel)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "progress unreadable")
}

func TestLoad_ReadsPersistedRecord(t *testing.T) {
	repo := repository.NewSQLiteProgressRepo(testutil.NewTestDB(t))
	require.NoError(t, repo.Save(context.Background(), testutil.NewTestProgress("easy", 2, 1)))

	store := NewStore(repo, zerolog.Nop())
	store.Load(context.Background())

	assert.True(t, store.IsUnlocked("easy", 3))
	assert.False(t, store.IsUnlocked("easy", 4))
}

func TestRecordCompletion_StarsNeverRegress(t *testing.T) {
	repo := &testutil.FlakyProgressRepo{}
	store := NewStore(repo, zerolog.Nop())
	ctx := context.Background()
	store.Load(ctx)

	_, err := store.RecordCompletion(ctx, domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 3, ScoreDelta: 30})
	require.NoError(t, err)
	rec, err := store.RecordCompletion(ctx, domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 1, ScoreDelta: 5})
	require.NoError(t, err)

	stars, ok := rec.Stars("easy", 1)
	assert.True(t, ok)
	assert.Equal(t, 3, stars)
	assert.Equal(t, 35, rec.CumulativeScore)

	saved, _ := repo.Saved.Stars("easy", 1)
	assert.Equal(t, 3, saved, "persisted copy matches")
}

func TestRecordCompletion_UnlocksNextSubLevel(t *testing.T) {
	store := NewStore(&testutil.FlakyProgressRepo{}, zerolog.Nop())
	ctx := context.Background()
	store.Load(ctx)

	assert.True(t, store.IsUnlocked("easy", 1))
	assert.False(t, store.IsUnlocked("easy", 2))

	_, err := store.RecordCompletion(ctx, domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 0})
	require.NoError(t, err)
	assert.True(t, store.IsUnlocked("easy", 2), "a 0-star completion unlocks the next sub-level")
	assert.False(t, store.IsUnlocked("easy", 3))
}

func TestRecordCompletion_RetriesOnce(t *testing.T) {
	repo := &testutil.FlakyProgressRepo{FailSaves: 1}
	store := NewStore(repo, zerolog.Nop())

	_, err := store.RecordCompletion(context.Background(), domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.SaveCalls)
	require.NotNil(t, repo.Saved)
}

func TestRecordCompletion_PersistenceErrorKeepsMemory(t *testing.T) {
	cause := errors.New("read-only file system")
	repo := &testutil.FlakyProgressRepo{FailSaves: 2, Err: cause}
	store := NewStore(repo, zerolog.Nop())

	rec, err := store.RecordCompletion(context.Background(), domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 2, ScoreDelta: 20})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, repo.SaveCalls, "exactly one retry")

	require.NotNil(t, rec)
	assert.Equal(t, 20, rec.CumulativeScore)
	assert.True(t, store.IsUnlocked("easy", 2), "in-memory record stays updated")
	assert.Nil(t, repo.Saved)
}

func TestRecordCompletion_InvalidCompletion(t *testing.T) {
	repo := &testutil.FlakyProgressRepo{}
	store := NewStore(repo, zerolog.Nop())

	_, err := store.RecordCompletion(context.Background(), domain.Completion{LevelID: "easy", SubLevel: 0, Stars: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, repo.SaveCalls)
}

func TestReset_ClearsLevelAndPersists(t *testing.T) {
	repo := &testutil.FlakyProgressRepo{}
	store := NewStore(repo, zerolog.Nop())
	ctx := context.Background()

	_, err := store.RecordCompletion(ctx, domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 3, ScoreDelta: 10, Mastered: []string{"apple"}})
	require.NoError(t, err)
	_, err = store.RecordCompletion(ctx, domain.Completion{LevelID: "medium", SubLevel: 1, Stars: 1, ScoreDelta: 4})
	require.NoError(t, err)

	rec, err := store.Reset(ctx, "easy")
	require.NoError(t, err)
	assert.False(t, rec.IsUnlocked("easy", 2))
	assert.False(t, rec.IsMastered("easy", 1, "apple"))
	assert.True(t, rec.IsUnlocked("medium", 2))
	assert.Equal(t, 14, rec.CumulativeScore, "score survives a reset")
	assert.False(t, repo.Saved.IsUnlocked("easy", 2))
}

func TestSnapshot_IsACopy(t *testing.T) {
	store := NewStore(&testutil.FlakyProgressRepo{}, zerolog.Nop())
	snap := store.Snapshot()
	snap.Apply(domain.Completion{LevelID: "easy", SubLevel: 1})

	assert.False(t, store.IsUnlocked("easy", 2))
}
