package words

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// ValidateSchema checks a word database before conversion.
// Returns a slice of all validation errors found.
func ValidateSchema(schema FileSchema) []error {
	var errs []error
	if len(schema) == 0 {
		return []error{fmt.Errorf("word database defines no levels")}
	}

	for _, levelID := range sortedKeys(schema) {
		subs := schema[levelID]
		if strings.TrimSpace(levelID) == "" {
			errs = append(errs, fmt.Errorf("level id must not be blank"))
			continue
		}
		if strings.Contains(levelID, "_") {
			errs = append(errs, fmt.Errorf("level %q: id must not contain '_'", levelID))
		}
		if len(subs) == 0 {
			errs = append(errs, fmt.Errorf("level %q defines no sub-levels", levelID))
			continue
		}
		errs = append(errs, validateSubLevels(levelID, subs)...)
	}
	return errs
}

func validateSubLevels(levelID string, subs map[string]SubLevelSchema) []error {
	var errs []error

	ids := make([]int, 0, len(subs))
	for key, sub := range subs {
		prefix := fmt.Sprintf("%s[%s]", levelID, key)
		id, err := strconv.Atoi(key)
		if err != nil || id < 1 {
			errs = append(errs, fmt.Errorf("%s: sub-level id must be a positive integer", prefix))
			continue
		}
		ids = append(ids, id)
		errs = append(errs, validateWords(prefix, sub.Words)...)
	}

	// Unlocking walks n-1 -> n, so sub-levels must be numbered without gaps.
	sort.Ints(ids)
	for i, id := range ids {
		if id != i+1 {
			errs = append(errs, fmt.Errorf("%s: sub-levels must be numbered 1..%d without gaps, found %d", levelID, len(ids), id))
			break
		}
	}
	return errs
}

func validateWords(prefix string, words []WordSchema) []error {
	var errs []error
	if len(words) == 0 {
		errs = append(errs, fmt.Errorf("%s: no words", prefix))
	}

	seen := make(map[string]bool)
	for i, w := range words {
		wp := fmt.Sprintf("%s.words[%d]", prefix, i)
		canonical := domain.NormalizeAnswer(w.Word)
		if canonical == "" {
			errs = append(errs, fmt.Errorf("%s.word is required", wp))
		} else if seen[canonical] {
			errs = append(errs, fmt.Errorf("%s.word: duplicate word %q", wp, w.Word))
		} else {
			seen[canonical] = true
		}

		if w.Definitions[string(domain.LangEnglish)] == "" {
			errs = append(errs, fmt.Errorf("%s.definitions.en is required", wp))
		}
		for lang := range w.Definitions {
			if !domain.ValidLanguages[domain.Language(lang)] {
				errs = append(errs, fmt.Errorf("%s.definitions: unsupported language %q", wp, lang))
			}
		}
		for lang, tr := range w.Translations {
			if !domain.ValidLanguages[domain.Language(lang)] {
				errs = append(errs, fmt.Errorf("%s.translations: unsupported language %q", wp, lang))
			} else if strings.TrimSpace(tr) == "" {
				errs = append(errs, fmt.Errorf("%s.translations.%s must not be blank", wp, lang))
			}
		}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
