package models

import "time"

// DailyBudget is an explicit budget override for one day. Days without a row
// fall back to a computed default.
type DailyBudget struct {
	UserID              string    `gorm:"primaryKey;size:64" json:"user_id"`
	MonthKey            string    `gorm:"primaryKey;size:7" json:"month_key"`
	Date                string    `gorm:"primaryKey;size:10" json:"date"`
	DailyBudgetOverride int64     `gorm:"type:bigint;not null" json:"daily_budget_override"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// All returns every model owned by the schema, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Month{},
		&Entry{},
		&DailyBudget{},
	}
}
