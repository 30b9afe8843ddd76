package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	profilesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_api_profiles_created_total",
		Help: "Profiles created by user type",
	}, []string{"user_type"})

	profilesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profile_api_profiles_deleted_total",
		Help: "Profiles deleted",
	})

	testsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profile_api_tests_recorded_total",
		Help: "Test count increments",
	})

	scoreUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_api_score_updates_total",
		Help: "Score update attempts by outcome",
	}, []string{"outcome"}) // outcome=accepted|rejected

	profilesByType = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "profile_api_profiles",
		Help: "Stored profiles by user type (last refresh)",
	}, []string{"user_type"})

	averageScore = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "profile_api_average_score",
		Help: "Average score across every stored profile (last refresh)",
	})
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

func IncProfileCreated(userType string) { profilesCreated.WithLabelValues(userType).Inc() }
func IncProfileDeleted()                { profilesDeleted.Inc() }
func IncTestRecorded()                  { testsRecorded.Inc() }
func IncScoreUpdate(outcome string)     { scoreUpdates.WithLabelValues(outcome).Inc() }

// RecordProfileStats replaces the stored profile gauges with a fresh snapshot.
func RecordProfileStats(byType map[string]int64, avg float64) {
	for userType, total := range byType {
		profilesByType.WithLabelValues(userType).Set(float64(total))
	}

	averageScore.Set(avg)
}
