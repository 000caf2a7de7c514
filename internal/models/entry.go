package models

// EntryType is the direction of money for an entry.
type EntryType string

const (
	EntryTypeExpense EntryType = "expense"
	EntryTypeIncome  EntryType = "income"
)

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodEMoney       PaymentMethod = "e_money"
	PaymentMethodOther        PaymentMethod = "other"
)

// PaymentMethods lists every accepted payment method.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodBankTransfer,
	PaymentMethodEMoney,
	PaymentMethodOther,
}

// Entry is a single income or expense line inside one month.
// Amount is in the smallest currency unit and always positive.
type Entry struct {
	Base
	UserID        string         `gorm:"size:64;not null;index:idx_entries_user_month" json:"user_id"`
	MonthKey      string         `gorm:"size:7;not null;index:idx_entries_user_month" json:"month_key"`
	Date          string         `gorm:"size:10;not null" json:"date"`
	Type          EntryType      `gorm:"size:16;not null" json:"type"`
	Amount        int64          `gorm:"type:bigint;not null" json:"amount"`
	CategoryID    string         `gorm:"size:64;not null" json:"category_id"`
	Memo          *string        `json:"memo"`
	PaymentMethod *PaymentMethod `gorm:"size:32" json:"payment_method"`
}
