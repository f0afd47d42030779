// Package ask answers free-text questions by calling the best matching
// operation of an API description.
package ask

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakenesler/askapi/executor"
	"github.com/jakenesler/askapi/match"
	"github.com/jakenesler/askapi/metrics"
	"github.com/jakenesler/askapi/openapi"
)

// NoMatchMessage is returned when the description offers no operation.
const NoMatchMessage = "no endpoint matches the question"

// Config holds the fixed settings of an Asker.
type Config struct {
	BaseURL string
	APIKey  executor.APIKey
	Lint    bool // run advisory document validation and log the findings
}

// Asker turns a question into one REST call. It keeps no state between calls:
// the description is fetched and parsed again for every question.
type Asker struct {
	cfg      Config
	fetcher  openapi.Fetcher
	exec     executor.Executor
	recorder metrics.Recorder
	logger   *zap.Logger
}

// Option customises an Asker.
type Option func(*Asker)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Asker) { a.logger = logger }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(a *Asker) { a.recorder = r }
}

// New creates an Asker.
func New(cfg Config, fetcher openapi.Fetcher, exec executor.Executor, opts ...Option) *Asker {
	a := &Asker{
		cfg:      cfg,
		fetcher:  fetcher,
		exec:     exec,
		recorder: metrics.Nop{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.String("component", "ask"))
	return a
}

// Answer fetches the description, picks the best operation for question,
// calls it and returns the raw output. It never fails: fetch problems and the
// absence of any operation are reported as text, and the executor's output is
// returned as is even when the call itself failed.
func (a *Asker) Answer(ctx context.Context, question string) string {
	start := time.Now()
	log := a.logger.With(zap.String("request_id", uuid.NewString()))

	answer, outcome := a.answer(ctx, log, question)
	a.recorder.Observe(outcome, time.Since(start))
	log.Info("question answered",
		zap.String("outcome", outcome),
		zap.Duration("elapsed", time.Since(start)),
	)
	return answer
}

func (a *Asker) answer(ctx context.Context, log *zap.Logger, question string) (string, string) {
	desc, err := a.describe(ctx, log)
	switch {
	case errors.Is(err, openapi.ErrMissingPaths):
		log.Warn("description has no paths")
		return NoMatchMessage, metrics.OutcomeNoMatch
	case err != nil:
		log.Error("description unavailable", zap.Error(err))
		return fmt.Sprintf("unable to fetch API description: %v", err), metrics.OutcomeFetchFailed
	}

	req, ok := a.Plan(desc, question)
	if !ok {
		return NoMatchMessage, metrics.OutcomeNoMatch
	}
	log.Debug("request planned",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
	)

	res, err := a.exec.Execute(ctx, req)
	if err != nil {
		log.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Int("status", res.Status),
			zap.Error(err),
		)
		output := res.Output
		if output == "" {
			output = err.Error()
		}
		return output, metrics.OutcomeExecFailed
	}
	return res.Output, metrics.OutcomeAnswered
}

// Plan scores desc against question and synthesizes the request for the
// winner, headers included. It reports false when desc has no operations.
func (a *Asker) Plan(desc *openapi.Description, question string) (executor.Request, bool) {
	candidate, ok := match.Score(desc, question)
	if !ok {
		return executor.Request{}, false
	}
	if ce := a.logger.Check(zap.DebugLevel, "endpoint selected"); ce != nil {
		ce.Write(
			zap.String("path", candidate.Path),
			zap.String("method", candidate.Method),
			zap.Int("score", candidate.Score),
			zap.Strings("runners_up", runnersUp(desc, question, 3)),
		)
	}

	resolved := match.Resolve(candidate)
	synth := match.Build(a.cfg.BaseURL, resolved)
	return executor.Request{
		Method:  synth.Method,
		URL:     synth.URL,
		Headers: a.cfg.APIKey.Headers(),
	}, true
}

func (a *Asker) describe(ctx context.Context, log *zap.Logger) (*openapi.Description, error) {
	data, err := a.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if a.cfg.Lint {
		if err := openapi.Lint(ctx, data); err != nil {
			log.Warn("description has issues", zap.Error(err))
		}
	}

	desc, warnings, err := openapi.Parse(data)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Debug("parameter skipped", zap.Error(w))
	}
	log.Debug("description parsed",
		zap.Int("paths", len(desc.Paths)),
		zap.Int("operations", desc.Count()),
	)
	return desc, nil
}

// runnersUp lists the n best candidates after the winner as "METHOD path (score)".
func runnersUp(desc *openapi.Description, question string, n int) []string {
	ranked := match.Rank(desc, question)
	if len(ranked) > 0 {
		ranked = ranked[1:]
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, fmt.Sprintf("%s %s (%d)", c.Method, c.Path, c.Score))
	}
	return out
}
