// Package breaker guards the generative model providers with circuit
// breakers and a per-call deadline. A failed call is never retried: the
// caller sees the error and decides whether to try again.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/heartmarshall/dreamjournal-backend/internal/config"
	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
	"github.com/heartmarshall/dreamjournal-backend/internal/observability"
)

// Capability names, used as breaker names and metric labels.
const (
	CapabilityInterpret = "interpret"
	CapabilityImage     = "image"
)

type interpreter interface {
	Interpret(ctx context.Context, dreamText string) (*domain.AIInterpretation, error)
}

type imager interface {
	GenerateImage(ctx context.Context, dreamText string) (string, error)
}

type recorder interface {
	ObserveAI(capability, outcome string, elapsed time.Duration)
	SetBreakerState(name string, state float64)
}

// Settings tune both breakers.
type Settings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
	// CallTimeout bounds each provider call. Zero means no extra deadline.
	CallTimeout time.Duration
}

// SettingsFromConfig extracts breaker settings from the AI config.
func SettingsFromConfig(cfg config.AIConfig) Settings {
	return Settings{
		MaxRequests:  cfg.BreakerMaxRequests,
		Interval:     cfg.BreakerInterval,
		Timeout:      cfg.BreakerTimeout,
		FailureRatio: cfg.BreakerFailureRatio,
		MinRequests:  cfg.BreakerMinRequests,
		CallTimeout:  cfg.RequestTimeout,
	}
}

// Guard wraps an interpreter and an imager. Each capability has its own
// breaker so a failing image model does not block interpretations.
type Guard struct {
	interp      interpreter
	img         imager
	interpCB    *gobreaker.CircuitBreaker
	imageCB     *gobreaker.CircuitBreaker
	callTimeout time.Duration
	metrics     recorder
	log         *slog.Logger
}

// New creates a Guard. metrics may be nil.
func New(logger *slog.Logger, interp interpreter, img imager, s Settings, metrics recorder) *Guard {
	g := &Guard{
		interp:      interp,
		img:         img,
		callTimeout: s.CallTimeout,
		metrics:     metrics,
		log:         logger.With("adapter", "ai_breaker"),
	}
	g.interpCB = g.newBreaker(CapabilityInterpret, s)
	g.imageCB = g.newBreaker(CapabilityImage, s)
	return g
}

func (g *Guard) newBreaker(name string, s Settings) *gobreaker.CircuitBreaker {
	if g.metrics != nil {
		g.metrics.SetBreakerState(name, float64(gobreaker.StateClosed))
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= s.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.log.Warn("ai breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if g.metrics != nil {
				g.metrics.SetBreakerState(name, float64(to))
			}
		},
		// The caller giving up says nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// Interpret calls the wrapped interpreter through its breaker.
func (g *Guard) Interpret(ctx context.Context, dreamText string) (*domain.AIInterpretation, error) {
	res, err := g.execute(ctx, g.interpCB, CapabilityInterpret, func(ctx context.Context) (any, error) {
		return g.interp.Interpret(ctx, dreamText)
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.AIInterpretation), nil
}

// GenerateImage calls the wrapped imager through its breaker.
func (g *Guard) GenerateImage(ctx context.Context, dreamText string) (string, error) {
	res, err := g.execute(ctx, g.imageCB, CapabilityImage, func(ctx context.Context) (any, error) {
		return g.img.GenerateImage(ctx, dreamText)
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func (g *Guard) execute(ctx context.Context, cb *gobreaker.CircuitBreaker, capability string, call func(context.Context) (any, error)) (any, error) {
	start := time.Now()

	res, err := cb.Execute(func() (any, error) {
		callCtx := ctx
		if g.callTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.callTimeout)
			defer cancel()
		}
		return call(callCtx)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		g.observe(capability, observability.OutcomeRejected, 0)
		g.log.WarnContext(ctx, "ai call rejected", slog.String("capability", capability), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w: provider temporarily unavailable: %w", capability, domain.ErrAI, err)
	case err != nil:
		g.observe(capability, observability.OutcomeFailure, time.Since(start))
		if !errors.Is(err, domain.ErrAI) {
			err = fmt.Errorf("%s: %w: %w", capability, domain.ErrAI, err)
		}
		return nil, err
	}

	g.observe(capability, observability.OutcomeSuccess, time.Since(start))
	return res, nil
}

func (g *Guard) observe(capability, outcome string, elapsed time.Duration) {
	if g.metrics != nil {
		g.metrics.ObserveAI(capability, outcome, elapsed)
	}
}
