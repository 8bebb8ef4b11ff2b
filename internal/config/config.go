// Package config resolves process-level configuration from WORDGAME_*
// environment variables and an optional .env file.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/joho/godotenv"
)

// Backend selects where progress, settings, difficult words and history live.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Scoring holds the round point values. Zero or negative values fall back to
// round defaults when converted.
type Scoring struct {
	RewardPerCorrect  int
	PenaltyPerWrong   int
	PenaltyPerHint    int
	PenaltyPerTimeout int
}

type Config struct {
	Home          string
	Store         Backend
	DBPath        string
	WordsPath     string // empty means the embedded word database
	LogFile       string
	LogLevel      string
	SoundDisabled bool
	Scoring       Scoring
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	home := ".wordgame"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".wordgame")
	}
	return defaultsFor(home)
}

func defaultsFor(home string) Config {
	rc := round.DefaultConfig()
	return Config{
		Home:     home,
		Store:    BackendFile,
		DBPath:   filepath.Join(home, "wordgame.db"),
		LogFile:  filepath.Join(home, "wordgame.log"),
		LogLevel: "info",
		Scoring: Scoring{
			RewardPerCorrect:  rc.RewardPerCorrect,
			PenaltyPerWrong:   rc.PenaltyPerWrong,
			PenaltyPerHint:    rc.PenaltyPerHint,
			PenaltyPerTimeout: rc.PenaltyPerTimeout,
		},
	}
}

// Load reads configuration from the environment. Values in envFiles (".env"
// when none are given) apply only to variables the environment leaves unset.
// Unreadable env files are ignored.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	fileVals := make(map[string]string)
	for _, f := range envFiles {
		vals, err := godotenv.Read(f)
		if err != nil {
			continue
		}
		for k, v := range vals {
			if _, seen := fileVals[k]; !seen {
				fileVals[k] = v
			}
		}
	}
	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fileVals[key]
	}

	cfg := Default()
	if v := get("WORDGAME_HOME"); v != "" {
		cfg = defaultsFor(v)
	}
	if v := get("WORDGAME_STORE"); v != "" {
		switch Backend(v) {
		case BackendFile, BackendSQLite:
			cfg.Store = Backend(v)
		}
	}
	if v := get("WORDGAME_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := get("WORDGAME_WORDS"); v != "" {
		cfg.WordsPath = v
	}
	if v := get("WORDGAME_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := get("WORDGAME_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := get("WORDGAME_SOUND_DISABLED"); v != "" {
		cfg.SoundDisabled, _ = strconv.ParseBool(v)
	}

	applyIntEnv(get, "WORDGAME_REWARD", &cfg.Scoring.RewardPerCorrect, 1)
	applyIntEnv(get, "WORDGAME_PENALTY_WRONG", &cfg.Scoring.PenaltyPerWrong, 0)
	applyIntEnv(get, "WORDGAME_PENALTY_HINT", &cfg.Scoring.PenaltyPerHint, 0)
	applyIntEnv(get, "WORDGAME_PENALTY_TIMEOUT", &cfg.Scoring.PenaltyPerTimeout, 0)

	return cfg
}

// RoundConfig combines the scoring knobs with the learner's settings.
func (c Config) RoundConfig(s domain.Settings) round.Config {
	rc := round.DefaultConfig()
	rc.TimerSeconds = s.TimerDuration
	rc.Language = s.Language
	rc.RewardPerCorrect = c.Scoring.RewardPerCorrect
	rc.PenaltyPerWrong = c.Scoring.PenaltyPerWrong
	rc.PenaltyPerHint = c.Scoring.PenaltyPerHint
	rc.PenaltyPerTimeout = c.Scoring.PenaltyPerTimeout
	return rc.Normalize()
}

func applyIntEnv(get func(string) string, name string, dst *int, min int) {
	v := get(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		return
	}
	*dst = n
}
