package words

// FileSchema is the on-disk word database:
// level id -> sub-level id (decimal string) -> sub-level.
type FileSchema map[string]map[string]SubLevelSchema

// SubLevelSchema is one themed batch of words.
type SubLevelSchema struct {
	Theme string       `json:"theme"`
	Words []WordSchema `json:"words"`
}

// WordSchema is one word with its per-language definitions and translations.
type WordSchema struct {
	Word         string            `json:"word"`
	Definitions  map[string]string `json:"definitions"`
	Translations map[string]string `json:"translations"`
}
