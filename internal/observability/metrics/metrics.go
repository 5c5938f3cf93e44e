package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

// The collectors exist before Init so commands that never start the metrics
// server can still record into them.
var (
	once          sync.Once
	metricsRouter *chi.Mux

	operationDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_ops_duration_seconds",
			Help:    "Histogram of staking operation build durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "outcome"},
	)
	operationRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_ops_rejections_total",
			Help: "Number of staking operations rejected, by error code.",
		},
		[]string{"operation", "code"},
	)
	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)
	clientRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics registers the Prometheus metrics.
func registerMetrics() {
	prometheus.MustRegister(
		operationDurationHistogram,
		operationRejections,
		httpRequestDurationHistogram,
		clientRequestLatency,
	)
}

// StartOperationTimer starts a timer to measure how long building an
// operation takes. The returned func records the outcome.
func StartOperationTimer(operation string) func(err error) {
	startTime := time.Now()
	return func(err error) {
		outcome := Success
		if err != nil {
			outcome = Error
		}
		duration := time.Since(startTime).Seconds()
		operationDurationHistogram.WithLabelValues(operation, outcome.String()).Observe(duration)
	}
}

// RecordRejection counts an operation rejected with the given error code.
func RecordRejection(operation, code string) {
	operationRejections.WithLabelValues(operation, code).Inc()
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestLatency.WithLabelValues(
			baseUrl, method, path, fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
