package http

import "github.com/prometheus/client_golang/prometheus"

var (
	rendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studiomap_renders_total",
			Help: "Total number of diagram renders served",
		},
		[]string{"trigger"},
	)
	fetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "studiomap_flow_fetch_duration_seconds",
			Help: "Duration of flow definition fetches",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(rendersTotal, fetchDuration)
}
