package repository

import (
	"fmt"

	"github.com/profileapi/database"
)

type Stats struct {
	Total        int64
	ByType       map[database.UserType]int64
	AverageScore float64
	TestsTaken   int64
}

type statsRow struct {
	UserType   string
	Total      int64
	ScoreSum   float64
	TestsTaken int64
}

// Stats aggregates profiles per user type. Types without profiles report zero.
func (p Profiles) Stats() (Stats, error) {
	var rows []statsRow

	err := p.DB.Sql().
		Model(&database.User{}).
		Select("user_type, COUNT(*) AS total, COALESCE(SUM(score), 0) AS score_sum, COALESCE(SUM(test_count), 0) AS tests_taken").
		Group("user_type").
		Scan(&rows).Error

	if err != nil {
		return Stats{}, fmt.Errorf("profile stats: %w", err)
	}

	stats := Stats{ByType: make(map[database.UserType]int64, len(database.UserTypes()))}

	for _, kind := range database.UserTypes() {
		stats.ByType[kind] = 0
	}

	var scoreSum float64

	for _, row := range rows {
		stats.ByType[database.UserType(row.UserType)] = row.Total
		stats.Total += row.Total
		stats.TestsTaken += row.TestsTaken
		scoreSum += row.ScoreSum
	}

	if stats.Total > 0 {
		stats.AverageScore = scoreSum / float64(stats.Total)
	}

	return stats, nil
}
