package domain

import "fmt"

// ProgressRecord is the learner's durable progress across sessions.
type ProgressRecord struct {
	CurrentLevelID  string
	CumulativeScore int

	// StarsBySubLevel[level][sub] is the best rating earned on that sub-level.
	// Presence of an entry, even 0, marks the sub-level as completed.
	StarsBySubLevel map[string]map[int]int

	// CompletedWords[level][sub] holds canonical words answered correctly.
	CompletedWords map[string]map[int]map[string]bool
}

// Completion is the outcome of a finished round handed to the progress store.
type Completion struct {
	LevelID    string
	SubLevel   int
	Stars      int
	ScoreDelta int
	Mastered   []string
}

// Validate checks the completion is recordable.
func (c Completion) Validate() error {
	if c.LevelID == "" {
		return fmt.Errorf("level id is required")
	}
	if c.SubLevel < 1 {
		return fmt.Errorf("sub-level must be >= 1, got %d", c.SubLevel)
	}
	if c.Stars < 0 || c.Stars > MaxStars {
		return fmt.Errorf("stars must be within 0..%d, got %d", MaxStars, c.Stars)
	}
	return nil
}

func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		StarsBySubLevel: make(map[string]map[int]int),
		CompletedWords:  make(map[string]map[int]map[string]bool),
	}
}

// Stars returns the stored rating and whether the sub-level has been completed.
func (p *ProgressRecord) Stars(levelID string, subLevel int) (int, bool) {
	stars, ok := p.StarsBySubLevel[levelID][subLevel]
	return stars, ok
}

// IsUnlocked reports whether subLevel may be played. Sub-level 1 is always
// open; later ones require any recorded completion of the previous one.
func (p *ProgressRecord) IsUnlocked(levelID string, subLevel int) bool {
	if subLevel <= 1 {
		return true
	}
	_, ok := p.Stars(levelID, subLevel-1)
	return ok
}

// IsMastered reports whether word was already answered correctly on the sub-level.
func (p *ProgressRecord) IsMastered(levelID string, subLevel int, word string) bool {
	return p.CompletedWords[levelID][subLevel][NormalizeAnswer(word)]
}

// MasteredCount returns the number of completed words on the sub-level.
func (p *ProgressRecord) MasteredCount(levelID string, subLevel int) int {
	return len(p.CompletedWords[levelID][subLevel])
}

// TotalStars sums the ratings over every sub-level of a level.
func (p *ProgressRecord) TotalStars(levelID string) int {
	total := 0
	for _, s := range p.StarsBySubLevel[levelID] {
		total += s
	}
	return total
}

// Apply folds a completion into the record. Ratings never regress.
func (p *ProgressRecord) Apply(c Completion) {
	if p.StarsBySubLevel == nil {
		p.StarsBySubLevel = make(map[string]map[int]int)
	}
	if p.CompletedWords == nil {
		p.CompletedWords = make(map[string]map[int]map[string]bool)
	}

	subs := p.StarsBySubLevel[c.LevelID]
	if subs == nil {
		subs = make(map[int]int)
		p.StarsBySubLevel[c.LevelID] = subs
	}
	if existing, ok := subs[c.SubLevel]; !ok || c.Stars > existing {
		subs[c.SubLevel] = c.Stars
	}

	if len(c.Mastered) > 0 {
		bySub := p.CompletedWords[c.LevelID]
		if bySub == nil {
			bySub = make(map[int]map[string]bool)
			p.CompletedWords[c.LevelID] = bySub
		}
		words := bySub[c.SubLevel]
		if words == nil {
			words = make(map[string]bool)
			bySub[c.SubLevel] = words
		}
		for _, w := range c.Mastered {
			words[NormalizeAnswer(w)] = true
		}
	}

	p.CumulativeScore += c.ScoreDelta
	if p.CumulativeScore < 0 {
		p.CumulativeScore = 0
	}
	p.CurrentLevelID = c.LevelID
}

// ResetLevel forgets ratings and mastered words for one level, or for every
// level when levelID is empty. The cumulative score is kept.
func (p *ProgressRecord) ResetLevel(levelID string) {
	if levelID == "" {
		p.StarsBySubLevel = make(map[string]map[int]int)
		p.CompletedWords = make(map[string]map[int]map[string]bool)
		p.CurrentLevelID = ""
		return
	}
	delete(p.StarsBySubLevel, levelID)
	delete(p.CompletedWords, levelID)
	if p.CurrentLevelID == levelID {
		p.CurrentLevelID = ""
	}
}

// Clone returns a deep copy.
func (p *ProgressRecord) Clone() *ProgressRecord {
	c := NewProgressRecord()
	c.CurrentLevelID = p.CurrentLevelID
	c.CumulativeScore = p.CumulativeScore
	for lvl, subs := range p.StarsBySubLevel {
		m := make(map[int]int, len(subs))
		for sub, s := range subs {
			m[sub] = s
		}
		c.StarsBySubLevel[lvl] = m
	}
	for lvl, bySub := range p.CompletedWords {
		m := make(map[int]map[string]bool, len(bySub))
		for sub, words := range bySub {
			w := make(map[string]bool, len(words))
			for k, v := range words {
				w[k] = v
			}
			m[sub] = w
		}
		c.CompletedWords[lvl] = m
	}
	return c
}
