package save

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperrors "monthbook/internal/errors"
)

func opsWithCategories(ids ...string) Ops {
	var ops Ops
	for i, id := range ids {
		fields := EntryFields{Date: "2026-02-01", Type: "expense", Amount: 100, CategoryID: id}
		if i%2 == 0 {
			ops.CreateEntries = append(ops.CreateEntries, CreateEntry{EntryFields: fields})
		} else {
			ops.UpdateEntries = append(ops.UpdateEntries, UpdateEntry{EntryID: "e-1", EntryFields: fields})
		}
	}
	return ops
}

func TestReferenceChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("all_known_single_lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := NewMockCategoryLookup(ctrl)
		lookup.EXPECT().
			CategoryIDs(gomock.Any(), "user-1").
			Return([]string{"cat-001", "cat-002", "cat-003"}, nil).
			Times(1)

		checker := ReferenceChecker{Lookup: lookup}
		err := checker.Check(ctx, "user-1", opsWithCategories("cat-001", "cat-002", "cat-001", "cat-003"))
		assert.NoError(t, err)
	})

	t.Run("unknown_category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := NewMockCategoryLookup(ctrl)
		lookup.EXPECT().CategoryIDs(gomock.Any(), "user-1").Return([]string{"cat-001"}, nil)

		checker := ReferenceChecker{Lookup: lookup}
		err := checker.Check(ctx, "user-1", opsWithCategories("cat-001", "cat-999"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUnknownCategory)
		assert.Contains(t, err.Error(), `"cat-999"`)
	})

	t.Run("no_references_skips_lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := NewMockCategoryLookup(ctrl)

		checker := ReferenceChecker{Lookup: lookup}
		ops := Ops{
			DeleteEntries:      []DeleteEntry{{EntryID: "e-1"}},
			UpsertDailyBudgets: []UpsertDailyBudget{{Date: "2026-02-01", Override: 10}},
		}
		assert.NoError(t, checker.Check(ctx, "user-1", ops))
	})

	t.Run("lookup_failure_is_internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lookup := NewMockCategoryLookup(ctrl)
		lookup.EXPECT().CategoryIDs(gomock.Any(), "user-1").Return(nil, errors.New("connection reset"))

		checker := ReferenceChecker{Lookup: lookup}
		err := checker.Check(ctx, "user-1", opsWithCategories("cat-001"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInternalServer)
		assert.NotContains(t, err.Error(), "connection reset")
	})
}
