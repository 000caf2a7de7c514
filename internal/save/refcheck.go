package save

import (
	"context"
	"errors"
	"fmt"

	apperrors "monthbook/internal/errors"
)

//go:generate mockgen -source=refcheck.go -destination=refcheck_mock.go -package=save

// CategoryLookup lists the ids of every category a user owns.
type CategoryLookup interface {
	CategoryIDs(ctx context.Context, userID string) ([]string, error)
}

// ReferenceChecker verifies that every category referenced by a batch
// belongs to the user, using a single lookup regardless of batch size.
type ReferenceChecker struct {
	Lookup CategoryLookup
}

// Check returns ErrUnknownCategory naming the first missing id. When the
// operations reference no categories the lookup is skipped.
func (r ReferenceChecker) Check(ctx context.Context, userID string, ops Ops) error {
	referenced := ops.CategoryIDs()
	if len(referenced) == 0 {
		return nil
	}

	owned, err := r.Lookup.CategoryIDs(ctx, userID)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("lookup categories: %w", err))
	}

	known := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		known[id] = struct{}{}
	}
	for _, id := range referenced {
		if _, ok := known[id]; !ok {
			return apperrors.WithMessage(apperrors.ErrUnknownCategory, fmt.Sprintf("unknown category_id %q", id))
		}
	}
	return nil
}
