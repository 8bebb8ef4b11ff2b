package domain

import "time"

// RoundResult is one completed round as kept in the play history.
type RoundResult struct {
	ID           string
	LevelID      string
	SubLevel     int
	Stars        int
	Score        int
	CorrectCount int
	TotalWords   int
	FinishedAt   time.Time
}
