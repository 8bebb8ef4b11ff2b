// Package words loads the read-only word database and serves the playable
// words of a sub-level to a round.
package words

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

//go:embed data/words.json
var embedded embed.FS

// levelOrder ranks the built-in difficulty levels; other level ids follow
// alphabetically.
var levelOrder = map[string]int{"easy": 0, "medium": 1, "hard": 2}

// SubLevel is one playable batch of words.
type SubLevel struct {
	LevelID string
	ID      int
	Theme   string
	Words   []domain.WordEntry
}

// Database is an immutable, validated word database.
type Database struct {
	levels map[string]map[int]*SubLevel
	order  []string
}

// Default returns the database shipped with the binary.
func Default() (*Database, error) {
	data, err := embedded.ReadFile("data/words.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded word database: %w", err)
	}
	return Parse(data)
}

// Load reads a database from path, or the embedded default when path is empty.
func Load(path string) (*Database, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word database: %w", err)
	}
	db, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

// Parse decodes and validates a JSON word database.
func Parse(data []byte) (*Database, error) {
	var schema FileSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing word database: %w", err)
	}
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid word database: %w", errors.Join(errs...))
	}
	return convert(schema), nil
}

func convert(schema FileSchema) *Database {
	db := &Database{levels: make(map[string]map[int]*SubLevel, len(schema))}
	for levelID, subs := range schema {
		db.order = append(db.order, levelID)
		bySub := make(map[int]*SubLevel, len(subs))
		for key, s := range subs {
			id, _ := strconv.Atoi(key)
			sl := &SubLevel{LevelID: levelID, ID: id, Theme: s.Theme}
			for _, w := range s.Words {
				sl.Words = append(sl.Words, domain.WordEntry{
					Word:         w.Word,
					LevelID:      levelID,
					SubLevel:     id,
					Theme:        s.Theme,
					Definitions:  toLangMap(w.Definitions),
					Translations: toLangMap(w.Translations),
				})
			}
			bySub[id] = sl
		}
		db.levels[levelID] = bySub
	}
	sort.Slice(db.order, func(i, j int) bool {
		ri, iKnown := levelOrder[db.order[i]]
		rj, jKnown := levelOrder[db.order[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return db.order[i] < db.order[j]
		}
	})
	return db
}

func toLangMap(m map[string]string) map[domain.Language]string {
	out := make(map[domain.Language]string, len(m))
	for k, v := range m {
		out[domain.Language(k)] = v
	}
	return out
}

// Levels returns the level ids in play order.
func (d *Database) Levels() []string {
	return append([]string(nil), d.order...)
}

// HasLevel reports whether levelID exists.
func (d *Database) HasLevel(levelID string) bool {
	_, ok := d.levels[levelID]
	return ok
}

// SubLevels returns the sub-levels of a level ordered by id.
func (d *Database) SubLevels(levelID string) []SubLevel {
	subs := d.levels[levelID]
	out := make([]SubLevel, 0, len(subs))
	for _, s := range subs {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns one sub-level.
func (d *Database) Lookup(levelID string, subLevel int) (SubLevel, bool) {
	s, ok := d.levels[levelID][subLevel]
	if !ok {
		return SubLevel{}, false
	}
	return *s, true
}

// Words returns every word of the sub-level; an absent sub-level yields none.
func (d *Database) Words(levelID string, subLevel int) ([]domain.WordEntry, error) {
	s, ok := d.levels[levelID][subLevel]
	if !ok {
		return nil, nil
	}
	return append([]domain.WordEntry(nil), s.Words...), nil
}
