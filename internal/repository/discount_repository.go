package repository

import (
	"context"
	"database/sql"

	"github.com/harism06/museum-db/internal/model"
)

// DiscountRepo owns the discountcodes table. Codes are issued per visitor,
// carry a limited use counter and an expiration date, and are only ever
// decremented.
type DiscountRepo struct{ db *sql.DB }

func NewDiscountRepo(db *sql.DB) *DiscountRepo { return &DiscountRepo{db: db} }

// Validate fetches a code that belongs to the visitor, still has uses
// remaining, and has not expired. Anything else is ErrDiscountInvalid; the
// caller decides which status code that becomes.
func (r *DiscountRepo) Validate(ctx context.Context, code string, visitorID uint64) (model.DiscountCode, error) {
	var d model.DiscountCode
	err := r.db.QueryRowContext(ctx,
		`SELECT discountID, visitorID, percent, numOfUses, expiration
		 FROM discountcodes
		 WHERE discountID=? AND visitorID=? AND numOfUses > 0 AND expiration >= CURDATE()`,
		code, visitorID).Scan(&d.DiscountID, &d.VisitorID, &d.Percent, &d.NumOfUses, &d.Expiration)
	if err == sql.ErrNoRows {
		return d, ErrDiscountInvalid
	}
	return d, err
}

// RedeemTx validates and decrements a code inside the checkout transaction.
// The decrement re-checks numOfUses > 0 in its WHERE clause, so when two
// checkouts race for the last use exactly one of them sees an affected row;
// the other gets ErrDiscountInvalid and the whole order rolls back.
func (r *DiscountRepo) RedeemTx(ctx context.Context, tx *sql.Tx, code string, visitorID uint64) (model.DiscountCode, error) {
	var d model.DiscountCode
	err := tx.QueryRowContext(ctx,
		`SELECT discountID, visitorID, percent, numOfUses, expiration
		 FROM discountcodes
		 WHERE discountID=? AND visitorID=? AND numOfUses > 0 AND expiration >= CURDATE()`,
		code, visitorID).Scan(&d.DiscountID, &d.VisitorID, &d.Percent, &d.NumOfUses, &d.Expiration)
	if err == sql.ErrNoRows {
		return d, ErrDiscountInvalid
	}
	if err != nil {
		return d, err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE discountcodes SET numOfUses = numOfUses - 1
		 WHERE discountID=? AND visitorID=? AND numOfUses > 0`,
		code, visitorID)
	if err != nil {
		return d, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return d, ErrDiscountInvalid
	}
	d.NumOfUses--
	return d, nil
}
