package services

import (
	"context"

	"github.com/emre/classpulse/internal/app/models/dto"
	"github.com/emre/classpulse/internal/app/repositories"
)

const topContributorLimit = 5

type statsService struct {
	points repositories.PointRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(points repositories.PointRepository) StatsService {
	return &statsService{points: points}
}

// Leaderboard ranks students by total points using competition ranking:
// tied totals share a rank and the next distinct total's rank equals one
// plus the count of strictly greater entries.
func (s *statsService) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	totals, err := s.points.TotalsByStudent(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, len(totals))
	rank := 1
	for i, t := range totals {
		if i > 0 && t.TotalPoints < totals[i-1].TotalPoints {
			rank = i + 1
		}
		entries[i] = dto.LeaderboardEntry{
			Student:     t.Student,
			TotalPoints: t.TotalPoints,
			Rank:        rank,
		}
	}
	return entries, nil
}

// Sections maps each class section to its total points
func (s *statsService) Sections(ctx context.Context) (map[string]int, error) {
	totals, err := s.points.TotalsBySection(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(totals))
	for _, t := range totals {
		result[t.Section] = t.TotalPoints
	}
	return result, nil
}

// TopContributors returns the five highest totals projected to name/points
func (s *statsService) TopContributors(ctx context.Context) ([]dto.Contributor, error) {
	totals, err := s.points.TotalsByStudent(ctx)
	if err != nil {
		return nil, err
	}

	if len(totals) > topContributorLimit {
		totals = totals[:topContributorLimit]
	}

	contributors := make([]dto.Contributor, len(totals))
	for i, t := range totals {
		contributors[i] = dto.Contributor{Name: t.Student.Name, Points: t.TotalPoints}
	}
	return contributors, nil
}

// Statistics returns day/month bucket series plus the overall per-record
// average and the average of per-ISO-week totals. An empty ledger yields 0
// for both averages.
func (s *statsService) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	daily, err := s.points.TotalsByDay(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := s.points.TotalsByMonth(ctx)
	if err != nil {
		return nil, err
	}
	weekly, err := s.points.TotalsByWeek(ctx)
	if err != nil {
		return nil, err
	}
	count, sum, err := s.points.CountAndSum(ctx)
	if err != nil {
		return nil, err
	}

	averages := dto.Averages{}
	if count > 0 {
		averages.Daily = float64(sum) / float64(count)
	}
	if len(weekly) > 0 {
		weekSum := 0
		for _, w := range weekly {
			weekSum += w.Points
		}
		averages.Weekly = float64(weekSum) / float64(len(weekly))
	}

	return &dto.StatisticsResponse{
		Daily:    daily,
		Monthly:  monthly,
		Averages: averages,
	}, nil
}
