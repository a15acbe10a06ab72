package imageproxy

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/adapter/storage"
	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/loader"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/metrics"
	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/thumbor"
)

// LocalRootPrefix is prepended to local upload paths before they reach the
// file loader.
const LocalRootPrefix = "files/"

type State int

const (
	StateDispatched State = iota
	StateRetrying
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDispatched:
		return "dispatched"
	case StateRetrying:
		return "retrying"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Loaders groups one backend per source type. A nil backend fails every
// load routed to it with an upstream failure.
type Loaders struct {
	File storage.ImageLoader
	S3   storage.ImageLoader
	HTTP storage.ImageLoader
}

type Result struct {
	Outcome  valueobject.LoaderOutcome
	State    State
	Attempts int
}

type Dispatcher struct {
	loaders Loaders
	timeout time.Duration
	logger  *zap.Logger
}

func NewDispatcher(loaders Loaders, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		loaders: loaders,
		timeout: timeout,
		logger:  logger,
	}
}

func (d *Dispatcher) Load(ctx context.Context, reference string) valueobject.LoaderOutcome {
	return d.Dispatch(ctx, reference).Outcome
}

// LoadAsync runs Load on its own goroutine and invokes callback exactly once
// with the terminal outcome.
func (d *Dispatcher) LoadAsync(ctx context.Context, reference string, callback func(valueobject.LoaderOutcome)) {
	go func() {
		callback(d.Load(ctx, reference))
	}()
}

// Dispatch resolves reference ("<path>/source_type/<tag>", percent-encoded
// once) against the matching backend. Only external references are retried,
// once, over plain http.
func (d *Dispatcher) Dispatch(ctx context.Context, reference string) Result {
	decoded, err := url.PathUnescape(reference)
	if err != nil {
		d.logger.Debug("undecodable reference", zap.String("reference", reference), zap.Error(err))
		return d.fail(valueobject.NotFoundOutcome(), 0)
	}

	actual, sourceType := thumbor.SplitImageURL(decoded)
	log := d.logger.With(zap.String("source_type", sourceType.String()), zap.String("path", actual))

	switch sourceType {
	case valueobject.SourceTypeLocal:
		return d.single(ctx, log, sourceType, d.loaders.File, LocalRootPrefix+actual)
	case valueobject.SourceTypeRemote:
		return d.single(ctx, log, sourceType, d.loaders.S3, actual)
	case valueobject.SourceTypeExternal:
		return d.withFallback(ctx, log, actual)
	default:
		log.Debug("loader state", zap.Stringer("state", StateFailed), zap.String("reason", "unknown source type"))
		return d.fail(valueobject.NotFoundOutcome(), 0)
	}
}

func (d *Dispatcher) single(ctx context.Context, log *zap.Logger, sourceType valueobject.SourceType, backend storage.ImageLoader, p string) Result {
	log.Debug("loader state", zap.Stringer("state", StateDispatched))
	outcome := d.attempt(ctx, sourceType, backend, p)
	if outcome.Successful {
		log.Debug("loader state", zap.Stringer("state", StateResolved))
		return Result{Outcome: outcome, State: StateResolved, Attempts: 1}
	}
	log.Warn("load failed", zap.Stringer("error_kind", outcome.ErrorKind))
	return d.fail(outcome, 1)
}

func (d *Dispatcher) withFallback(ctx context.Context, log *zap.Logger, actual string) Result {
	sourceType := valueobject.SourceTypeExternal

	log.Debug("loader state", zap.Stringer("state", StateDispatched))
	outcome := d.attempt(ctx, sourceType, d.loaders.HTTP, actual)
	if outcome.Successful {
		log.Debug("loader state", zap.Stringer("state", StateResolved))
		return Result{Outcome: outcome, State: StateResolved, Attempts: 1}
	}

	fallback := loader.ToHTTPScheme(actual)
	log.Info("retrying external load over http",
		zap.Stringer("state", StateRetrying),
		zap.Stringer("error_kind", outcome.ErrorKind),
		zap.String("fallback_url", fallback),
	)
	metrics.RecordRetry(sourceType.Tag())

	outcome = d.attempt(ctx, sourceType, d.loaders.HTTP, fallback)
	if outcome.Successful {
		log.Debug("loader state", zap.Stringer("state", StateResolved))
		return Result{Outcome: outcome, State: StateResolved, Attempts: 2}
	}
	log.Warn("load failed", zap.Stringer("error_kind", outcome.ErrorKind), zap.Int("attempts", 2))
	return d.fail(outcome, 2)
}

func (d *Dispatcher) attempt(ctx context.Context, sourceType valueobject.SourceType, backend storage.ImageLoader, p string) valueobject.LoaderOutcome {
	if backend == nil {
		metrics.RecordLoad(sourceType.Tag(), valueobject.ErrorKindUpstreamFailure.String(), 0)
		return valueobject.FailedOutcome(fmt.Errorf("%w: no %s loader configured", domain.ErrUpstreamFailure, sourceType))
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	img, err := backend.Load(ctx, p)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
		}
		outcome := valueobject.FailedOutcome(err)
		metrics.RecordLoad(sourceType.Tag(), outcome.ErrorKind.String(), elapsed)
		return outcome
	}

	metrics.RecordLoad(sourceType.Tag(), "success", elapsed)
	return valueobject.SuccessOutcome(img)
}

func (d *Dispatcher) fail(outcome valueobject.LoaderOutcome, attempts int) Result {
	return Result{Outcome: outcome, State: StateFailed, Attempts: attempts}
}
