package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/harism06/museum-db/internal/model"
	"github.com/harism06/museum-db/internal/utils"
)

// VisitorRepo owns the visitor and credentials tables. The two tables form
// one logical record (credentials.email mirrors visitor.Email), so every
// write that touches both runs inside a single transaction.
type VisitorRepo struct{ db *sql.DB }

func NewVisitorRepo(db *sql.DB) *VisitorRepo { return &VisitorRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions that
// span repositories, mirroring how checkout settles orders.
func (r *VisitorRepo) DB() *sql.DB { return r.db }

// Register creates the visitor row and its credentials row atomically and
// returns the new visitor ID. The role tier is 0 for self-registration and
// 1-3 for staff accounts. A duplicate email maps to ErrEmailExists whether
// it is caught by the pre-check or by the unique index.
func (r *VisitorRepo) Register(ctx context.Context, name string, age int, birthDate time.Time, email, phone, password string, role, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM visitor WHERE Email=?", email).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists > 0 {
		return 0, ErrEmailExists
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO visitor (Name, Age, BirthDate, Email, PhoneNum, membership_start_date, membership_end_date)
		 VALUES (?,?,?,?,?,NULL,NULL)`,
		name, age, birthDate, email, phone)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO credentials (email, password, visitorid, role) VALUES (?,?,?,?)",
		email, hash, id, role); err != nil {
		if isDuplicate(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

// CredentialByEmail fetches the login row for a normalized email.
func (r *VisitorRepo) CredentialByEmail(ctx context.Context, email string) (model.Credential, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var c model.Credential
	err := r.db.QueryRowContext(ctx,
		"SELECT visitorid, email, password, role FROM credentials WHERE email=? LIMIT 1",
		email).Scan(&c.VisitorID, &c.Email, &c.PasswordHash, &c.Role)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

// RoleByVisitor returns the current role tier for a visitor. The role gate
// calls this on every protected request instead of trusting token claims.
func (r *VisitorRepo) RoleByVisitor(ctx context.Context, visitorID uint64) (int, error) {
	var role int
	err := r.db.QueryRowContext(ctx,
		"SELECT role FROM credentials WHERE visitorid=? LIMIT 1", visitorID).Scan(&role)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return role, err
}

// TouchLastLogin stamps visitor.lastLoggedIn after a successful login.
func (r *VisitorRepo) TouchLastLogin(ctx context.Context, visitorID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE visitor SET lastLoggedIn = NOW() WHERE VisitorID=?", visitorID)
	return err
}

// Profile joins the visitor row with its credentials row; the role tier
// rides along so the client can gate its own UI.
type Profile struct {
	model.Visitor
	Role int
}

// GetProfile loads a visitor profile including the role tier.
func (r *VisitorRepo) GetProfile(ctx context.Context, visitorID uint64) (Profile, error) {
	var p Profile
	err := r.db.QueryRowContext(ctx,
		`SELECT v.VisitorID, v.Name, v.Age, v.BirthDate, v.Email, v.PhoneNum,
		        v.membership_start_date, v.membership_end_date, v.created_at, v.lastLoggedIn, c.role
		 FROM visitor v
		 JOIN credentials c ON v.VisitorID = c.visitorid
		 WHERE v.VisitorID = ?`,
		visitorID).Scan(&p.VisitorID, &p.Name, &p.Age, &p.BirthDate, &p.Email, &p.PhoneNum,
		&p.MembershipStartDate, &p.MembershipEndDate, &p.CreatedAt, &p.LastLoggedIn, &p.Role)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// UpdateProfile rewrites the visitor's own details. The email lives in two
// tables; both updates share one transaction so the pair can never
// desynchronize. Moving to an email owned by another account returns
// ErrEmailExists.
func (r *VisitorRepo) UpdateProfile(ctx context.Context, visitorID uint64, name, email, phone string, age int, birthDate time.Time) error {
	email = strings.ToLower(strings.TrimSpace(email))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var taken int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM credentials WHERE email=? AND visitorid<>?",
		email, visitorID).Scan(&taken); err != nil {
		return err
	}
	if taken > 0 {
		return ErrEmailExists
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE visitor SET Name=?, Email=?, PhoneNum=?, Age=?, BirthDate=? WHERE VisitorID=?",
		name, email, phone, age, birthDate, visitorID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE credentials SET email=? WHERE visitorid=?", email, visitorID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateMembership persists a membership window on the visitor row.
func (r *VisitorRepo) UpdateMembership(ctx context.Context, visitorID uint64, start, end time.Time) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE visitor SET membership_start_date=?, membership_end_date=? WHERE VisitorID=?",
		start, end, visitorID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateMembershipTx is the transactional variant used by checkout so the
// window update commits or rolls back together with the order.
func (r *VisitorRepo) UpdateMembershipTx(ctx context.Context, tx *sql.Tx, visitorID uint64, start, end time.Time) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE visitor SET membership_start_date=?, membership_end_date=? WHERE VisitorID=?",
		start, end, visitorID)
	return err
}

// MembershipWindow reads just the current window, used by checkout to
// decide whether to extend from the existing end date.
func (r *VisitorRepo) MembershipWindow(ctx context.Context, visitorID uint64) (start, end *time.Time, err error) {
	err = r.db.QueryRowContext(ctx,
		"SELECT membership_start_date, membership_end_date FROM visitor WHERE VisitorID=?",
		visitorID).Scan(&start, &end)
	if err == sql.ErrNoRows {
		return nil, nil, ErrNotFound
	}
	return start, end, err
}

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062 on a unique index).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
