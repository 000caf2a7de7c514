// Package monthkey handles "YYYY-MM" month identifiers, the unit of locking,
// editability and storage partitioning for a user's ledger.
package monthkey

import (
	"fmt"
	"regexp"
	"time"
)

var (
	keyPattern  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Key identifies a calendar month as "YYYY-MM".
type Key string

// Parse validates s as a month key.
func Parse(s string) (Key, error) {
	if !keyPattern.MatchString(s) {
		return "", fmt.Errorf("invalid month key %q: expected YYYY-MM", s)
	}
	return Key(s), nil
}

// IsValid reports whether s is a well-formed month key.
func IsValid(s string) bool {
	return keyPattern.MatchString(s)
}

// IsDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// Of returns the key of the month containing t, in t's location.
func Of(t time.Time) Key {
	return Key(t.Format("2006-01"))
}

// String implements fmt.Stringer.
func (k Key) String() string { return string(k) }

// Contains reports whether date is a valid YYYY-MM-DD date inside the month.
func (k Key) Contains(date string) bool {
	return IsDate(date) && date[:7] == string(k)
}

// Prev returns the key n months before k. Only year and month numbers are
// involved, so day-of-month never shifts the result.
func (k Key) Prev(n int) Key {
	var year, month int
	if _, err := fmt.Sscanf(string(k), "%4d-%2d", &year, &month); err != nil {
		return k
	}
	idx := year*12 + (month - 1) - n
	return Key(fmt.Sprintf("%04d-%02d", idx/12, idx%12+1))
}

// Window returns the key of now's month followed by the size-1 preceding
// keys, newest first.
func Window(now time.Time, size int) []Key {
	if size <= 0 {
		return nil
	}
	current := Of(now)
	keys := make([]Key, 0, size)
	for i := 0; i < size; i++ {
		keys = append(keys, current.Prev(i))
	}
	return keys
}
