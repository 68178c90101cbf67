package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	sunElevationDegrees = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skyframe_sun_elevation_degrees",
			Help: "Elevation of the centre of the sun above the horizon.",
		},
		[]string{"job"},
	)

	nextSunsetTimestamp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skyframe_next_sunset_timestamp_seconds",
			Help: "Unix time of the next scheduled sun event, offset included.",
		},
		[]string{"schedule"},
	)

	jobRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyframe_job_runs_total",
			Help: "Total number of solar job runs.",
		},
		[]string{"job", "result"},
	)
)

func init() {
	prometheus.MustRegister(sunElevationDegrees)
	prometheus.MustRegister(nextSunsetTimestamp)
	prometheus.MustRegister(jobRunsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveElevation(job string, degrees float64) {
	sunElevationDegrees.WithLabelValues(job).Set(degrees)
}

func ObserveNextEvent(schedule string, t time.Time) {
	nextSunsetTimestamp.WithLabelValues(schedule).Set(float64(t.UnixNano()) / 1e9)
}

// JobRun counts a run as ok or error.
func JobRun(job string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	jobRunsTotal.WithLabelValues(job, result).Inc()
}
