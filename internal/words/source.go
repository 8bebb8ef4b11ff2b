package words

import "github.com/Thereal-Vadim/Word-Game/internal/domain"

// Source serves a round the words it may still ask: words the learner has
// already mastered are skipped, as are words with no answer in the round
// language.
type Source struct {
	db       *Database
	lang     domain.Language
	progress *domain.ProgressRecord
}

// NewSource filters db by progress for rounds played in lang. A nil progress
// record serves every word.
func NewSource(db *Database, lang domain.Language, progress *domain.ProgressRecord) *Source {
	return &Source{db: db, lang: lang, progress: progress}
}

func (s *Source) Words(levelID string, subLevel int) ([]domain.WordEntry, error) {
	all, err := s.db.Words(levelID, subLevel)
	if err != nil {
		return nil, err
	}
	out := make([]domain.WordEntry, 0, len(all))
	for _, w := range all {
		if w.Answer(s.lang) == "" {
			continue
		}
		if s.progress != nil && s.progress.IsMastered(levelID, subLevel, w.Word) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}
