package services

import (
	"context"

	"monthbook/internal/events"
	"monthbook/internal/save"
)

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=services

// SaveServicer defines the contract for the month save path.
type SaveServicer interface {
	// Save validates body and applies it to userID's month. Failures are
	// *apperrors.AppError values.
	Save(ctx context.Context, userID string, body []byte) (*save.Outcome, error)
}

// BatchApplier applies a compiled batch as one all-or-nothing unit.
type BatchApplier interface {
	ApplyBatch(ctx context.Context, batch save.Batch) (save.BatchResult, error)
}

// EventPublisher announces committed saves.
type EventPublisher interface {
	PublishMonthSaved(ctx context.Context, msg *events.MonthSaved) error
}
