package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "monthbook/internal/errors"
	"monthbook/internal/events"
	"monthbook/internal/logger"
	"monthbook/internal/metrics"
	"monthbook/internal/monthkey"
	"monthbook/internal/save"
	"monthbook/internal/uuid"
)

// SaveDeps are the collaborators of the save service. Events and Metrics
// are optional.
type SaveDeps struct {
	Applier    BatchApplier
	Categories save.CategoryLookup
	Events     EventPublisher
	Metrics    *metrics.Metrics
	Clock      monthkey.Clock
	NewID      uuid.Generator
}

// saveService runs the save pipeline: validate, range check, no-op
// short-circuit, reference check, compile, apply, conflict detection.
type saveService struct {
	policy   save.RangePolicy
	refs     save.ReferenceChecker
	compiler save.Compiler
	applier  BatchApplier
	events   EventPublisher
	metrics  *metrics.Metrics
	clock    monthkey.Clock
}

// NewSaveService creates a new SaveServicer.
func NewSaveService(deps SaveDeps) SaveServicer {
	clock := deps.Clock
	if clock == nil {
		clock = monthkey.SystemClock{}
	}
	publisher := deps.Events
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &saveService{
		policy:   save.RangePolicy{Clock: clock},
		refs:     save.ReferenceChecker{Lookup: deps.Categories},
		compiler: save.Compiler{NewID: deps.NewID},
		applier:  deps.Applier,
		events:   publisher,
		metrics:  deps.Metrics,
		clock:    clock,
	}
}

// Save applies body to userID's month.
func (s *saveService) Save(ctx context.Context, userID string, body []byte) (*save.Outcome, error) {
	log := logger.With("user_id", userID)

	req, err := save.Parse(body)
	if err != nil {
		var ve *save.ValidationError
		if errors.As(err, &ve) {
			return s.reject(log, apperrors.WithMessage(apperrors.ErrInvalidInput, ve.Error()))
		}
		return s.reject(log, apperrors.Wrap(apperrors.ErrInternalServer, err))
	}
	log = log.With("month_key", req.MonthKey, "expected_version", req.ExpectedVersion)

	if err := s.policy.Check(req.MonthKey); err != nil {
		return s.reject(log, err)
	}

	if req.Ops.Count() == 0 {
		s.metrics.ObserveSave(metrics.OutcomeNoop, 0)
		log.Debugw("no-op save")
		return save.NoOp(req), nil
	}

	if err := s.refs.Check(ctx, userID, req.Ops); err != nil {
		return s.reject(log, err)
	}

	now := s.clock.Now()
	batch := s.compiler.Compile(userID, req, now)

	res, err := s.applier.ApplyBatch(ctx, batch)
	if err != nil {
		return s.reject(log, apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("apply batch: %w", err)))
	}

	out, err := save.Detect(req, batch, res)
	if err != nil {
		return s.reject(log, err)
	}

	s.metrics.ObserveSave(metrics.OutcomeOK, out.Applied.Total())
	log.Infow("month saved", "new_version", out.NewVersion, "operations", out.Applied.Total())
	s.publish(ctx, log, userID, out, now)

	return out, nil
}

func (s *saveService) reject(log *zap.SugaredLogger, err error) (*save.Outcome, error) {
	outcome := metrics.OutcomeFor(err)
	s.metrics.ObserveSave(outcome, 0)

	if outcome == metrics.OutcomeError {
		log.Errorw("save failed", "error", err, "cause", errors.Unwrap(err))
	} else {
		log.Infow("save rejected", "outcome", outcome, "reason", err.Error())
	}
	return nil, err
}

// publish announces a committed save. Failures are logged but never
// propagate: the save has already committed.
func (s *saveService) publish(ctx context.Context, log *zap.SugaredLogger, userID string, out *save.Outcome, savedAt time.Time) {
	msg := events.NewMonthSaved(userID, out, savedAt)
	if err := s.events.PublishMonthSaved(context.WithoutCancel(ctx), msg); err != nil {
		log.Warnw("failed to publish month saved event", "error", err, "new_version", out.NewVersion)
	}
}
