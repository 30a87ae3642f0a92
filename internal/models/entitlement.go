package models

import "time"

type Entitlement struct {
	ID          int64     `db:"id"           json:"id"`
	Email       string    `db:"email"        json:"email"`
	Plan        string    `db:"plan"         json:"plan"`
	Status      string    `db:"status"       json:"status"`
	PaymentID   string    `db:"payment_id"   json:"paymentId,omitempty"`
	AmountPaise int64     `db:"amount_paise" json:"amountPaise,omitempty"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updatedAt"`
}
