package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sdr_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sdr_pipeline_run_duration_seconds",
			Help:    "Duration of each full pipeline run in seconds.",
			Buckets: []float64{30, 60, 300, 900, 1800, 3600},
		},
	)
	StepDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "sdr_pipeline_step_duration_seconds",
			Help:       "Duration of each step in company processing.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step"},
	)
	SignalsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sdr_signals_detected_total",
			Help: "Total number of detected signals after deduplication.",
		},
		[]string{"scan_type"},
	)
	DraftsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sdr_drafts_generated_total",
			Help: "Total number of generated email drafts.",
		},
	)
	FilteredDraftsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sdr_drafts_filtered_total",
			Help: "Total number of signals the LLM refused to draft for.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RunDuration)
	prometheus.MustRegister(StepDuration)
	prometheus.MustRegister(SignalsCounter)
	prometheus.MustRegister(DraftsCounter)
	prometheus.MustRegister(FilteredDraftsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
