package models

// CategoryKind says which entry types a category may classify.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindBoth    CategoryKind = "both"
)

// Category is a user-owned label referenced by entries. Categories are
// managed elsewhere; the save path only checks that referenced ids exist.
type Category struct {
	Base
	UserID    string       `gorm:"size:64;not null;uniqueIndex:uq_categories_user_name" json:"user_id"`
	Name      string       `gorm:"not null;uniqueIndex:uq_categories_user_name" json:"name"`
	Kind      CategoryKind `gorm:"size:16;not null" json:"kind"`
	IsActive  bool         `gorm:"not null;default:true" json:"is_active"`
	SortOrder *int         `json:"sort_order,omitempty"`
}
