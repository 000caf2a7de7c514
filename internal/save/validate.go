package save

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"monthbook/internal/models"
	"monthbook/internal/monthkey"
	reqvalidator "monthbook/internal/validator"
)

// ValidationError reports the first malformed part of a save request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Wire shapes. Pointers distinguish "absent or null" from zero values.
type requestBody struct {
	MonthKey        string   `json:"month_key" validate:"required,month_key"`
	ExpectedVersion *int64   `json:"expected_version" validate:"required,gte=0"`
	Ops             *opsBody `json:"ops" validate:"required"`
}

type opsBody struct {
	CreateEntries          []createEntryBody `json:"create_entries" validate:"dive"`
	UpdateEntries          []updateEntryBody `json:"update_entries" validate:"dive"`
	DeleteEntryIDs         []string          `json:"delete_entry_ids" validate:"dive,required,max=64"`
	UpsertDailyBudgets     []dailyBudgetBody `json:"upsert_daily_budgets" validate:"dive"`
	DeleteDailyBudgetDates []string          `json:"delete_daily_budget_dates" validate:"dive,required,ymd_date"`
}

type createEntryBody struct {
	EntryID       *string `json:"entry_id" validate:"omitnil,min=1,max=64"`
	Date          string  `json:"date" validate:"required,ymd_date"`
	Type          string  `json:"type" validate:"required,entry_type"`
	Amount        *int64  `json:"amount" validate:"required,gt=0"`
	CategoryID    string  `json:"category_id" validate:"required,max=64"`
	Memo          *string `json:"memo"`
	PaymentMethod *string `json:"payment_method" validate:"omitnil,payment_method"`
}

type updateEntryBody struct {
	EntryID       string  `json:"entry_id" validate:"required,max=64"`
	Date          string  `json:"date" validate:"required,ymd_date"`
	Type          string  `json:"type" validate:"required,entry_type"`
	Amount        *int64  `json:"amount" validate:"required,gt=0"`
	CategoryID    string  `json:"category_id" validate:"required,max=64"`
	Memo          *string `json:"memo"`
	PaymentMethod *string `json:"payment_method" validate:"omitnil,payment_method"`
}

type dailyBudgetBody struct {
	Date                string `json:"date" validate:"required,ymd_date"`
	DailyBudgetOverride *int64 `json:"daily_budget_override" validate:"required,gte=0"`
}

var structValidator = reqvalidator.New()

// Parse decodes and validates a raw save request body. It performs no I/O;
// on failure the error is a *ValidationError naming the offending field.
func Parse(body []byte) (Request, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return Request{}, invalid("", "request body is required")
	}

	var raw requestBody
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Request{}, decodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Request{}, invalid("", "request body must contain a single JSON object")
	}

	if err := structValidator.Struct(&raw); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return Request{}, describe(fieldErrs[0])
		}
		return Request{}, invalid("", "request is invalid: %v", err)
	}

	key := monthkey.Key(raw.MonthKey)
	if err := checkDates(key, raw.Ops); err != nil {
		return Request{}, err
	}
	if err := checkUnique(raw.Ops); err != nil {
		return Request{}, err
	}

	return Request{
		MonthKey:        key,
		ExpectedVersion: *raw.ExpectedVersion,
		Ops:             buildOps(raw.Ops),
	}, nil
}

// checkDates enforces that every date in the request falls inside the
// requested month. Shape has already been validated.
func checkDates(key monthkey.Key, ops *opsBody) *ValidationError {
	outside := func(field, date string) *ValidationError {
		return invalid(field, "(%s) is outside month %s", date, key)
	}
	for i, e := range ops.CreateEntries {
		if !key.Contains(e.Date) {
			return outside(fmt.Sprintf("ops.create_entries[%d].date", i), e.Date)
		}
	}
	for i, e := range ops.UpdateEntries {
		if !key.Contains(e.Date) {
			return outside(fmt.Sprintf("ops.update_entries[%d].date", i), e.Date)
		}
	}
	for i, b := range ops.UpsertDailyBudgets {
		if !key.Contains(b.Date) {
			return outside(fmt.Sprintf("ops.upsert_daily_budgets[%d].date", i), b.Date)
		}
	}
	for i, d := range ops.DeleteDailyBudgetDates {
		if !key.Contains(d) {
			return outside(fmt.Sprintf("ops.delete_daily_budget_dates[%d]", i), d)
		}
	}
	return nil
}

// checkUnique rejects a request that touches the same entry id, or the same
// daily budget date, more than once.
func checkUnique(ops *opsBody) *ValidationError {
	entries := make(map[string]string)
	seenEntry := func(field, id string) *ValidationError {
		if first, ok := entries[id]; ok {
			return invalid(field, "repeats entry id %q (first used at %s)", id, first)
		}
		entries[id] = field
		return nil
	}
	for i, e := range ops.CreateEntries {
		if e.EntryID == nil {
			continue
		}
		if err := seenEntry(fmt.Sprintf("ops.create_entries[%d].entry_id", i), *e.EntryID); err != nil {
			return err
		}
	}
	for i, e := range ops.UpdateEntries {
		if err := seenEntry(fmt.Sprintf("ops.update_entries[%d].entry_id", i), e.EntryID); err != nil {
			return err
		}
	}
	for i, id := range ops.DeleteEntryIDs {
		if err := seenEntry(fmt.Sprintf("ops.delete_entry_ids[%d]", i), id); err != nil {
			return err
		}
	}

	dates := make(map[string]string)
	seenDate := func(field, date string) *ValidationError {
		if first, ok := dates[date]; ok {
			return invalid(field, "repeats daily budget date %s (first used at %s)", date, first)
		}
		dates[date] = field
		return nil
	}
	for i, b := range ops.UpsertDailyBudgets {
		if err := seenDate(fmt.Sprintf("ops.upsert_daily_budgets[%d].date", i), b.Date); err != nil {
			return err
		}
	}
	for i, d := range ops.DeleteDailyBudgetDates {
		if err := seenDate(fmt.Sprintf("ops.delete_daily_budget_dates[%d]", i), d); err != nil {
			return err
		}
	}
	return nil
}

func buildOps(raw *opsBody) Ops {
	var ops Ops
	for _, e := range raw.CreateEntries {
		op := CreateEntry{EntryFields: entryFields(e.Date, e.Type, *e.Amount, e.CategoryID, e.Memo, e.PaymentMethod)}
		if e.EntryID != nil {
			op.EntryID = *e.EntryID
		}
		ops.CreateEntries = append(ops.CreateEntries, op)
	}
	for _, e := range raw.UpdateEntries {
		ops.UpdateEntries = append(ops.UpdateEntries, UpdateEntry{
			EntryID:     e.EntryID,
			EntryFields: entryFields(e.Date, e.Type, *e.Amount, e.CategoryID, e.Memo, e.PaymentMethod),
		})
	}
	for _, id := range raw.DeleteEntryIDs {
		ops.DeleteEntries = append(ops.DeleteEntries, DeleteEntry{EntryID: id})
	}
	for _, b := range raw.UpsertDailyBudgets {
		ops.UpsertDailyBudgets = append(ops.UpsertDailyBudgets, UpsertDailyBudget{Date: b.Date, Override: *b.DailyBudgetOverride})
	}
	for _, d := range raw.DeleteDailyBudgetDates {
		ops.DeleteDailyBudgets = append(ops.DeleteDailyBudgets, DeleteDailyBudget{Date: d})
	}
	return ops
}

func entryFields(date, typ string, amount int64, categoryID string, memo, paymentMethod *string) EntryFields {
	f := EntryFields{
		Date:       date,
		Type:       models.EntryType(typ),
		Amount:     amount,
		CategoryID: categoryID,
		Memo:       memo,
	}
	if paymentMethod != nil {
		pm := models.PaymentMethod(*paymentMethod)
		f.PaymentMethod = &pm
	}
	return f
}

// unknownFieldPrefix starts the error encoding/json reports when
// DisallowUnknownFields meets an unexpected key.
const unknownFieldPrefix = "json: unknown field "

func decodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return invalid("", "request body must be a JSON object")
		}
		return invalid(typeErr.Field, "has the wrong type: expected %s, got %s", typeName(typeErr.Type.String()), typeErr.Value)
	case errors.As(err, &syntaxErr):
		return invalid("", "request body is not valid JSON (offset %d)", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return invalid("", "request body is not valid JSON (unexpected end of input)")
	case strings.HasPrefix(err.Error(), unknownFieldPrefix):
		name := strings.TrimPrefix(err.Error(), unknownFieldPrefix)
		if unquoted, uerr := strconv.Unquote(name); uerr == nil {
			name = unquoted
		}
		return invalid(name, "is not a recognized field")
	default:
		return invalid("", "request body could not be decoded: %v", err)
	}
}

func typeName(goType string) string {
	switch strings.TrimPrefix(goType, "*") {
	case "int64":
		return "integer"
	case "string":
		return "string"
	case "[]string":
		return "array of strings"
	default:
		if strings.HasPrefix(goType, "[]") {
			return "array"
		}
		return "object"
	}
}

var paymentMethodList = func() string {
	names := make([]string, len(models.PaymentMethods))
	for i, m := range models.PaymentMethods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}()

func describe(fe validator.FieldError) *ValidationError {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return invalid(field, "is required")
	case "month_key":
		return invalid(field, "must be a YYYY-MM month key with month 01-12 (got %q)", fe.Value())
	case "ymd_date":
		return invalid(field, "must be a YYYY-MM-DD calendar date (got %q)", fe.Value())
	case "entry_type":
		return invalid(field, "must be one of expense, income (got %q)", fe.Value())
	case "payment_method":
		return invalid(field, "must be one of %s (got %q)", paymentMethodList, fe.Value())
	case "gt":
		return invalid(field, "must be a positive integer (got %v)", fe.Value())
	case "gte":
		return invalid(field, "must be a non-negative integer (got %v)", fe.Value())
	case "min":
		return invalid(field, "must not be empty")
	case "max":
		return invalid(field, "must be at most %s characters", fe.Param())
	default:
		return invalid(field, "failed %s validation", fe.Tag())
	}
}
