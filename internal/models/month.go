package models

import "time"

// CutoffPolicy decides where a budgeting month starts.
type CutoffPolicy string

const (
	CutoffPolicyCalendar CutoffPolicy = "calendar"
	CutoffPolicyCustom   CutoffPolicy = "custom"
)

// Month is the per-user, per-month header row. Version is the optimistic
// lock: it starts at 0 and every successful save advances it by exactly one.
type Month struct {
	UserID        string       `gorm:"primaryKey;size:64" json:"user_id"`
	MonthKey      string       `gorm:"primaryKey;size:7" json:"month_key"`
	Version       int64        `gorm:"not null;default:0" json:"version"`
	MonthlyBudget *int64       `json:"monthly_budget,omitempty"`
	CutoffPolicy  CutoffPolicy `gorm:"size:16;not null;default:'calendar'" json:"cutoff_policy"`
	CutoffDay     *int         `json:"cutoff_day,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
