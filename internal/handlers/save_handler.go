package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monthbook/internal/errors"
	"monthbook/internal/save"
	"monthbook/internal/services"
)

// maxSaveBody bounds the request body read by Save.
const maxSaveBody = 1 << 20

// SaveHandler handles month save requests.
type SaveHandler struct {
	saveService services.SaveServicer
}

// NewSaveHandler creates a new SaveHandler.
func NewSaveHandler(saveService services.SaveServicer) *SaveHandler {
	return &SaveHandler{saveService: saveService}
}

// SaveRequest documents the request payload. The body is decoded and
// validated by the save service, not by Gin binding.
type SaveRequest struct {
	MonthKey        string     `json:"month_key" example:"2026-02"`
	ExpectedVersion int64      `json:"expected_version" example:"3"`
	Ops             SaveOpsDoc `json:"ops"`
}

// SaveOpsDoc documents the operation lists of a save request.
type SaveOpsDoc struct {
	CreateEntries          []EntryDoc       `json:"create_entries,omitempty"`
	UpdateEntries          []EntryDoc       `json:"update_entries,omitempty"`
	DeleteEntryIDs         []string         `json:"delete_entry_ids,omitempty"`
	UpsertDailyBudgets     []DailyBudgetDoc `json:"upsert_daily_budgets,omitempty"`
	DeleteDailyBudgetDates []string         `json:"delete_daily_budget_dates,omitempty"`
}

// EntryDoc documents an entry operation.
type EntryDoc struct {
	EntryID       string  `json:"entry_id,omitempty" example:"0190a5d3-7c1e-7d2a-9b4f-1a2b3c4d5e6f"`
	Date          string  `json:"date" example:"2026-02-05"`
	Type          string  `json:"type" enums:"expense,income" example:"expense"`
	Amount        int64   `json:"amount" example:"500"`
	CategoryID    string  `json:"category_id" example:"cat-001"`
	Memo          *string `json:"memo,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty" enums:"cash,credit_card,debit_card,bank_transfer,e_money,other"`
}

// DailyBudgetDoc documents a daily budget upsert.
type DailyBudgetDoc struct {
	Date                string `json:"date" example:"2026-02-14"`
	DailyBudgetOverride int64  `json:"daily_budget_override" example:"3000"`
}

// SaveResponse is returned for a successful save.
type SaveResponse struct {
	OK         bool         `json:"ok" example:"true"`
	MonthKey   string       `json:"month_key" example:"2026-02"`
	NewVersion int64        `json:"new_version" example:"4"`
	Applied    save.Applied `json:"applied"`
}

// Save applies a diff-based batch of operations to one month.
// @Summary     Save a month
// @Description Apply entry and daily budget operations to one editable month under an optimistic version lock
// @Tags        months
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveRequest true "Month key, expected version and operations"
// @Success     200 {object} SaveResponse "Saved"
// @Failure     400 {object} ErrorResponse "Invalid input, read-only month or unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ConflictResponse "Version conflict"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /save [post]
func (h *SaveHandler) Save(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxSaveBody))
	if err != nil {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrInvalidInput, "request body could not be read"))
		return
	}

	out, err := h.saveService.Save(c.Request.Context(), userID, body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SaveResponse{
		OK:         true,
		MonthKey:   out.MonthKey.String(),
		NewVersion: out.NewVersion,
		Applied:    out.Applied,
	})
}
