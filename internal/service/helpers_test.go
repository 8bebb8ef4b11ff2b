package service

import (
	"context"
	"testing"

	"github.com/Thereal-Vadim/Word-Game/internal/config"
	"github.com/Thereal-Vadim/Word-Game/internal/progress"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/testutil"
	"github.com/Thereal-Vadim/Word-Game/internal/words"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testWordsJSON = `{
  "easy": {
    "1": {"theme": "Fruit", "words": [
      {"word": "apple", "definitions": {"en": "a red fruit"}, "translations": {"de": "Apfel"}},
      {"word": "pear", "definitions": {"en": "a green fruit"}, "translations": {"de": "Birne"}}
    ]},
    "2": {"theme": "Animals", "words": [
      {"word": "dog", "definitions": {"en": "it barks"}, "translations": {"de": "Hund"}}
    ]}
  },
  "medium": {
    "1": {"theme": "Home", "words": [
      {"word": "chair", "definitions": {"en": "you sit on it"}, "translations": {"de": "Stuhl"}}
    ]}
  }
}`

type fixture struct {
	words    *words.Database
	stores   repository.Stores
	store    *progress.Store
	settings SettingsService
	game     GameService
	dict     DictionaryService
	status   StatusService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithProgress(t, nil)
}

// newFixtureWithProgress wires services over an in-memory database. A
// non-nil progressRepo replaces the SQLite progress repository.
func newFixtureWithProgress(t *testing.T, progressRepo repository.ProgressRepo) *fixture {
	t.Helper()
	db, err := words.Parse([]byte(testWordsJSON))
	require.NoError(t, err)

	stores := repository.NewSQLiteStores(testutil.NewTestDB(t))
	if progressRepo != nil {
		stores.Progress = progressRepo
	}
	store := progress.NewStore(stores.Progress, zerolog.Nop())
	store.Load(context.Background())

	settings := NewSettingsService(stores.Settings, zerolog.Nop())
	cfg := config.Default()
	return &fixture{
		words:    db,
		stores:   stores,
		store:    store,
		settings: settings,
		game:     NewGameService(db, store, settings, stores.Difficult, stores.History, cfg, zerolog.Nop()),
		dict:     NewDictionaryService(db, store, settings, stores.Difficult),
		status:   NewStatusService(db, store, stores.Difficult, stores.History),
	}
}

// answerFor finds the expected answer of the current word by its definition.
func (f *fixture) answerFor(t *testing.T, ctrl *round.Controller) string {
	t.Helper()
	st := ctrl.State()
	prompt := ctrl.Current()
	list, err := f.words.Words(st.LevelID, st.SubLevel)
	require.NoError(t, err)
	for _, w := range list {
		if w.Definition(st.Language) == prompt.Definition {
			return w.Answer(st.Language)
		}
	}
	t.Fatalf("no word with definition %q", prompt.Definition)
	return ""
}

// play runs ctrl to completion. miss reports whether a word, identified by
// its expected answer, should be failed by exhausting attempts.
func (f *fixture) play(t *testing.T, ctrl *round.Controller, miss func(answer string) bool) *round.Summary {
	t.Helper()
	for {
		answer := f.answerFor(t, ctrl)
		if miss(answer) {
			for {
				out, err := ctrl.Submit("definitely wrong")
				require.NoError(t, err)
				if out.Exhausted {
					break
				}
			}
		} else {
			out, err := ctrl.Submit(answer)
			require.NoError(t, err)
			require.True(t, out.Correct)
		}
		_, summary, err := ctrl.Advance()
		require.NoError(t, err)
		if summary != nil {
			return summary
		}
	}
}

func missNone(string) bool { return false }
