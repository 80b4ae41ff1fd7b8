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
	Success  Outcome = "success"
	Error    Outcome = "error"
	Reverted Outcome = "reverted"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	chainCallLatency             *prometheus.HistogramVec
	transactionOutcomeCounter    *prometheus.CounterVec
	queueMessageDuration         *prometheus.HistogramVec
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

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	chainCallLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chain_call_duration_seconds",
			Help:    "Histogram of contract call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "outcome"},
	)

	transactionOutcomeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chain_transactions_total",
			Help: "Number of transactions sent, by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	queueMessageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "queue_message_processing_duration_seconds",
			Help:    "Histogram of queue message processing durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"queue", "outcome"},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		chainCallLatency,
		transactionOutcomeCounter,
		queueMessageDuration,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		if httpRequestDurationHistogram == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// StartChainCallTimer measures a single contract call. The returned func
// records the outcome derived from err.
func StartChainCallTimer(method string) func(err error) {
	startTime := time.Now()
	return func(err error) {
		if chainCallLatency == nil {
			return
		}
		outcome := Success
		if err != nil {
			outcome = Error
		}
		chainCallLatency.WithLabelValues(method, outcome.String()).Observe(time.Since(startTime).Seconds())
	}
}

func RecordTransactionOutcome(method string, outcome Outcome) {
	if transactionOutcomeCounter == nil {
		return
	}
	transactionOutcomeCounter.WithLabelValues(method, outcome.String()).Inc()
}

func StartQueueMessageTimer(queueName string) func(err error) {
	startTime := time.Now()
	return func(err error) {
		if queueMessageDuration == nil {
			return
		}
		outcome := Success
		if err != nil {
			outcome = Error
		}
		queueMessageDuration.WithLabelValues(queueName, outcome.String()).Observe(time.Since(startTime).Seconds())
	}
}
