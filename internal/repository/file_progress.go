package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// progressDocument is the on-disk progress shape. Sub-level ids are string
// keys because JSON object keys are strings.
type progressDocument struct {
	CurrentLevelID     string                         `json:"currentLevelId"`
	CompletedSubLevels map[string]map[string]int      `json:"completedSubLevels"`
	CumulativeScore    int                            `json:"cumulativeScore"`
	CompletedWords     map[string]map[string][]string `json:"completedWords,omitempty"`
}

// FileProgressRepo implements ProgressRepo as a single JSON document.
type FileProgressRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileProgressRepo(path string) *FileProgressRepo {
	return &FileProgressRepo{path: path}
}

func (r *FileProgressRepo) Load(_ context.Context) (*domain.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc progressDocument
	if err := readJSONFile(r.path, &doc); err != nil {
		return nil, err
	}
	return doc.toRecord()
}

func (r *FileProgressRepo) Save(_ context.Context, p *domain.ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSONFile(r.path, newProgressDocument(p))
}

func newProgressDocument(p *domain.ProgressRecord) progressDocument {
	doc := progressDocument{
		CurrentLevelID:     p.CurrentLevelID,
		CumulativeScore:    p.CumulativeScore,
		CompletedSubLevels: make(map[string]map[string]int, len(p.StarsBySubLevel)),
	}
	for level, subs := range p.StarsBySubLevel {
		m := make(map[string]int, len(subs))
		for sub, stars := range subs {
			m[subKey(sub)] = stars
		}
		doc.CompletedSubLevels[level] = m
	}
	for level, bySub := range p.CompletedWords {
		for sub, words := range bySub {
			list := make([]string, 0, len(words))
			for w, ok := range words {
				if ok {
					list = append(list, w)
				}
			}
			if len(list) == 0 {
				continue
			}
			sort.Strings(list)
			if doc.CompletedWords == nil {
				doc.CompletedWords = make(map[string]map[string][]string)
			}
			if doc.CompletedWords[level] == nil {
				doc.CompletedWords[level] = make(map[string][]string)
			}
			doc.CompletedWords[level][subKey(sub)] = list
		}
	}
	return doc
}

func (d progressDocument) toRecord() (*domain.ProgressRecord, error) {
	p := domain.NewProgressRecord()
	p.CurrentLevelID = d.CurrentLevelID
	p.CumulativeScore = d.CumulativeScore

	for level, subs := range d.CompletedSubLevels {
		m := make(map[int]int, len(subs))
		for key, stars := range subs {
			sub, err := strconv.Atoi(key)
			if err != nil || sub < 1 {
				return nil, fmt.Errorf("progress: level %q: invalid sub-level id %q", level, key)
			}
			if stars < 0 || stars > domain.MaxStars {
				return nil, fmt.Errorf("progress: level %q sub-level %d: stars %d out of range", level, sub, stars)
			}
			m[sub] = stars
		}
		p.StarsBySubLevel[level] = m
	}
	for level, bySub := range d.CompletedWords {
		m := make(map[int]map[string]bool, len(bySub))
		for key, words := range bySub {
			sub, err := strconv.Atoi(key)
			if err != nil || sub < 1 {
				return nil, fmt.Errorf("progress: level %q: invalid sub-level id %q in completed words", level, key)
			}
			set := make(map[string]bool, len(words))
			for _, w := range words {
				set[domain.NormalizeAnswer(w)] = true
			}
			m[sub] = set
		}
		p.CompletedWords[level] = m
	}
	if p.CumulativeScore < 0 {
		p.CumulativeScore = 0
	}
	return p, nil
}
