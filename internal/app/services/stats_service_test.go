package services

import (
	"context"
	"testing"

	"github.com/emre/classpulse/internal/app/models"
	"github.com/emre/classpulse/internal/app/repositories/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func studentTotal(id int64, name string, total int) models.StudentTotal {
	return models.StudentTotal{
		Student:     models.Student{ID: id, Name: name},
		TotalPoints: total,
	}
}

func TestLeaderboardCompetitionRanking(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByStudent", mock.Anything).Return([]models.StudentTotal{
		studentTotal(1, "Alice", 30),
		studentTotal(2, "Bob", 30),
		studentTotal(3, "Carol", 20),
	}, nil)

	svc := NewStatsService(repo)
	entries, err := svc.Leaderboard(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestLeaderboardEmpty(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByStudent", mock.Anything).Return([]models.StudentTotal{}, nil)

	svc := NewStatsService(repo)
	entries, err := svc.Leaderboard(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboardDistinctTotals(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByStudent", mock.Anything).Return([]models.StudentTotal{
		studentTotal(1, "Alice", 50),
		studentTotal(2, "Bob", 40),
		studentTotal(3, "Carol", 10),
	}, nil)

	svc := NewStatsService(repo)
	entries, err := svc.Leaderboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}

func TestSectionsMapAssembly(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsBySection", mock.Anything).Return([]models.SectionTotal{
		{Section: "A", TotalPoints: 8},
		{Section: "B", TotalPoints: 2},
	}, nil)

	svc := NewStatsService(repo)
	totals, err := svc.Sections(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 8, "B": 2}, totals)
}

func TestTopContributorsTruncatesToFive(t *testing.T) {
	totals := []models.StudentTotal{
		studentTotal(1, "a", 70),
		studentTotal(2, "b", 60),
		studentTotal(3, "c", 50),
		studentTotal(4, "d", 40),
		studentTotal(5, "e", 30),
		studentTotal(6, "f", 20),
		studentTotal(7, "g", 10),
	}
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByStudent", mock.Anything).Return(totals, nil)

	svc := NewStatsService(repo)
	contributors, err := svc.TopContributors(context.Background())

	assert.NoError(t, err)
	assert.Len(t, contributors, 5)
	assert.Equal(t, "a", contributors[0].Name)
	assert.Equal(t, 70, contributors[0].Points)
	assert.Equal(t, "e", contributors[4].Name)
}

func TestTopContributorsFewerThanFive(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByStudent", mock.Anything).Return([]models.StudentTotal{
		studentTotal(1, "a", 9),
	}, nil)

	svc := NewStatsService(repo)
	contributors, err := svc.TopContributors(context.Background())

	assert.NoError(t, err)
	assert.Len(t, contributors, 1)
}

func TestStatisticsAverages(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByDay", mock.Anything).Return([]models.BucketTotal{
		{Bucket: "2026-03-01", Points: 12},
		{Bucket: "2026-03-02", Points: 8},
	}, nil)
	repo.On("TotalsByMonth", mock.Anything).Return([]models.BucketTotal{
		{Bucket: "2026-03", Points: 20},
	}, nil)
	repo.On("TotalsByWeek", mock.Anything).Return([]models.BucketTotal{
		{Bucket: "2026-W10", Points: 12},
		{Bucket: "2026-W11", Points: 8},
	}, nil)
	repo.On("CountAndSum", mock.Anything).Return(int64(4), int64(20), nil)

	svc := NewStatsService(repo)
	stats, err := svc.Statistics(context.Background())

	assert.NoError(t, err)
	assert.Len(t, stats.Daily, 2)
	assert.Len(t, stats.Monthly, 1)
	assert.InDelta(t, 5.0, stats.Averages.Daily, 0.0001)
	assert.InDelta(t, 10.0, stats.Averages.Weekly, 0.0001)
}

func TestStatisticsEmptyLedgerYieldsZeroAverages(t *testing.T) {
	repo := new(mocks.MockPointRepo)
	repo.On("TotalsByDay", mock.Anything).Return([]models.BucketTotal{}, nil)
	repo.On("TotalsByMonth", mock.Anything).Return([]models.BucketTotal{}, nil)
	repo.On("TotalsByWeek", mock.Anything).Return([]models.BucketTotal{}, nil)
	repo.On("CountAndSum", mock.Anything).Return(int64(0), int64(0), nil)

	svc := NewStatsService(repo)
	stats, err := svc.Statistics(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, stats.Averages.Daily)
	assert.Zero(t, stats.Averages.Weekly)
}
