package handler

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/profileapi/database/repository"
	"github.com/profileapi/pkg/metrics"
)

type StatsSource interface {
	Stats() (repository.Stats, error)
}

type MetricsHandler struct {
	stats StatsSource
}

func NewMetricsHandler(stats StatsSource) MetricsHandler {
	return MetricsHandler{stats: stats}
}

// ServeHTTP refreshes the stored profile gauges, then hands over to promhttp
// since Prometheus owns the response format.
func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.stats != nil {
		if stats, err := h.stats.Stats(); err != nil {
			slog.Warn("could not refresh the profile gauges", "error", err)
		} else {
			byType := make(map[string]int64, len(stats.ByType))
			for kind, total := range stats.ByType {
				byType[string(kind)] = total
			}

			metrics.RecordProfileStats(byType, stats.AverageScore)
		}
	}

	promhttp.Handler().ServeHTTP(w, r)
}
