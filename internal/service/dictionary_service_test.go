package service

import (
	"context"
	"testing"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary_EntriesForLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.RecordCompletion(ctx, domain.Completion{LevelID: "easy", SubLevel: 1, Stars: 1, Mastered: []string{"pear"}})
	require.NoError(t, err)
	require.NoError(t, f.stores.Difficult.Add(ctx, "easy_1_apple"))

	entries, err := f.dict.Entries(ctx, "easy")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byWord := map[string]DictionaryEntry{}
	for _, e := range entries {
		byWord[e.Word] = e
	}
	assert.True(t, byWord["apple"].Difficult)
	assert.False(t, byWord["apple"].Mastered)
	assert.True(t, byWord["pear"].Mastered)
	assert.Equal(t, "it barks", byWord["dog"].Definition)
	assert.Equal(t, "dog", byWord["dog"].Answer)
	assert.Equal(t, "Animals", byWord["dog"].Theme)
}

func TestDictionary_AllLevelsAndLanguage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.settings.Update(ctx, domain.Settings{TimerDuration: 30, Language: domain.LangGerman, Theme: domain.ThemeDark}))

	entries, err := f.dict.Entries(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "medium", entries[3].LevelID)
	assert.Equal(t, "Stuhl", entries[3].Answer)
}

func TestDictionary_UnknownLevel(t *testing.T) {
	f := newFixture(t)

	_, err := f.dict.Entries(context.Background(), "legendary")
	assert.Error(t, err)
}

func TestDictionary_Difficult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	none, err := f.dict.Difficult(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, f.stores.Difficult.Add(ctx, "medium_1_chair", "easy_2_dog", "gone_1_word"))
	entries, err := f.dict.Difficult(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2, "keys unknown to the database are skipped")
	assert.Equal(t, "dog", entries[0].Word)
	assert.Equal(t, "chair", entries[1].Word)
	assert.True(t, entries[1].Difficult)
}
