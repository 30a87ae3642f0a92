package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"naukriedge/internal/models"
)

// EntitlementStore keys subscription access by payer email. UpsertByEmail is
// idempotent: replaying the same payment event leaves exactly one row.
type EntitlementStore interface {
	UpsertByEmail(ctx context.Context, e *models.Entitlement) (*models.Entitlement, error)
	GetByEmail(ctx context.Context, email string) (*models.Entitlement, error)
}

type entitlementPG struct{ db *pgxpool.Pool }

func NewEntitlementPG(db *pgxpool.Pool) EntitlementStore { return &entitlementPG{db: db} }

const entitlementColumns = `id, email, plan, status, payment_id, amount_paise, created_at, updated_at`

func (r *entitlementPG) UpsertByEmail(ctx context.Context, e *models.Entitlement) (*models.Entitlement, error) {
	const q = `
		INSERT INTO entitlements (email, plan, status, payment_id, amount_paise, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET plan=EXCLUDED.plan,
		    status=EXCLUDED.status,
		    payment_id=EXCLUDED.payment_id,
		    amount_paise=EXCLUDED.amount_paise,
		    updated_at=NOW()
		RETURNING ` + entitlementColumns

	var out models.Entitlement
	err := r.db.QueryRow(ctx, q,
		strings.ToLower(e.Email), e.Plan, e.Status, e.PaymentID, e.AmountPaise,
	).Scan(
		&out.ID, &out.Email, &out.Plan, &out.Status,
		&out.PaymentID, &out.AmountPaise, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *entitlementPG) GetByEmail(ctx context.Context, email string) (*models.Entitlement, error) {
	const q = `SELECT ` + entitlementColumns + ` FROM entitlements WHERE email=$1`
	var out models.Entitlement
	err := r.db.QueryRow(ctx, q, strings.ToLower(email)).Scan(
		&out.ID, &out.Email, &out.Plan, &out.Status,
		&out.PaymentID, &out.AmountPaise, &out.CreatedAt, &out.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
