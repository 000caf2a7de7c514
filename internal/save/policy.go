package save

import (
	"fmt"

	apperrors "monthbook/internal/errors"
	"monthbook/internal/monthkey"
)

// EditableMonths is the size of the editable window: the current month and
// the five months before it.
const EditableMonths = 6

// RangePolicy decides which months may be written. The window is derived
// from the clock on every call because it moves at each month boundary.
type RangePolicy struct {
	Clock monthkey.Clock
}

// Editable returns the editable month keys, newest first.
func (p RangePolicy) Editable() []monthkey.Key {
	return monthkey.Window(p.Clock.Now(), EditableMonths)
}

// Check returns ErrReadOnlyMonth unless key is in the editable window.
// Membership is by key equality.
func (p RangePolicy) Check(key monthkey.Key) error {
	window := p.Editable()
	for _, k := range window {
		if k == key {
			return nil
		}
	}
	return apperrors.WithMessage(apperrors.ErrReadOnlyMonth,
		fmt.Sprintf("month %s is read-only (editable: %s to %s)", key, window[len(window)-1], window[0]))
}
