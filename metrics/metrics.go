// Package metrics exposes counters for answered questions.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Outcomes recorded for every answered question.
const (
	OutcomeAnswered    = "answered"
	OutcomeNoMatch     = "no_match"
	OutcomeFetchFailed = "fetch_failed"
	OutcomeExecFailed  = "exec_failed"
)

// Recorder receives one observation per answered question.
type Recorder interface {
	Observe(outcome string, d time.Duration)
}

// Nop discards observations.
type Nop struct{}

func (Nop) Observe(string, time.Duration) {}

// Collector records outcomes in prometheus collectors.
type Collector struct {
	questions *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewCollector registers the collectors with reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	c := &Collector{
		questions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "questions_total",
				Help:      "Questions answered, by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "question_duration_seconds",
				Help:      "Time to answer a question, including the outgoing call",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(c.questions, c.duration)
	return c
}

func (c *Collector) Observe(outcome string, d time.Duration) {
	c.questions.WithLabelValues(outcome).Inc()
	c.duration.WithLabelValues(outcome).Observe(d.Seconds())
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listener started", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
