package dto

import (
	"github.com/emre/classpulse/internal/app/models"
)

// LeaderboardEntry is one ranked row of the leaderboard. Ties share a rank
// and the next distinct total skips ahead (competition ranking).
type LeaderboardEntry struct {
	Student     models.Student `json:"student"`
	TotalPoints int            `json:"totalPoints"`
	Rank        int            `json:"rank"`
}

// Contributor is a top-contributor projection
type Contributor struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Averages holds the overall per-record average and the average of
// per-ISO-week totals. Both are 0 when the ledger is empty.
type Averages struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

// StatisticsResponse is the time-bucketed statistics payload
type StatisticsResponse struct {
	Daily    []models.BucketTotal `json:"daily"`
	Monthly  []models.BucketTotal `json:"monthly"`
	Averages Averages             `json:"averages"`
}
