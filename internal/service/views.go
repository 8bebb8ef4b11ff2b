package service

import "github.com/Thereal-Vadim/Word-Game/internal/domain"

type SubLevelView struct {
	LevelID   string
	SubLevel  int
	Theme     string
	Words     int
	Mastered  int
	Stars     int
	Completed bool
	Unlocked  bool
}

type LevelView struct {
	ID         string
	SubLevels  []SubLevelView
	TotalStars int
	MaxStars   int
}

// Progress returns completed and total sub-level counts.
func (l LevelView) Progress() (done, total int) {
	for _, s := range l.SubLevels {
		if s.Completed {
			done++
		}
	}
	return done, len(l.SubLevels)
}

// RoundRecorded is what the caller shows after a round is saved.
type RoundRecorded struct {
	Progress     *domain.ProgressRecord
	Stars        int
	NextLevelID  string
	NextSubLevel int
	NextUnlocked bool
}

type DictionaryEntry struct {
	Key        string
	Word       string
	LevelID    string
	SubLevel   int
	Theme      string
	Definition string
	Answer     string
	Mastered   bool
	Difficult  bool
}

type StatusView struct {
	CumulativeScore int
	CurrentLevelID  string
	TotalStars      int
	MaxStars        int
	SubLevelsDone   int
	SubLevelsTotal  int
	WordsMastered   int
	WordsTotal      int
	DifficultCount  int
	Recent          []*domain.RoundResult
}
