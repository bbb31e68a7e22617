package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/harism06/museum-db/internal/model"
)

// StaffRepo covers the back-office reads and writes over visitor and
// credentials: membership listings, the employee roster, and staff edits.
type StaffRepo struct{ db *sql.DB }

func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{db: db} }

// MembershipRow is one line of the membership listing shown to employees.
type MembershipRow struct {
	VisitorID           uint64     `json:"visitorID"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	PhoneNum            string     `json:"phoneNumber"`
	BirthDate           time.Time  `json:"birthdate"`
	MembershipStartDate *time.Time `json:"membershipStartDate"`
	MembershipEndDate   *time.Time `json:"membershipEndDate"`
	CreatedAt           time.Time  `json:"createdAt"`
	LastLoggedIn        *time.Time `json:"lastLoggedIn"`
}

// ListMemberships returns every visitor with their membership window, the
// dataset behind the staff membership screen.
func (r *StaffRepo) ListMemberships(ctx context.Context) ([]MembershipRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT VisitorID, Name, Email, PhoneNum, BirthDate,
		        membership_start_date, membership_end_date, created_at, lastLoggedIn
		 FROM visitor
		 ORDER BY Name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MembershipRow
	for rows.Next() {
		var m MembershipRow
		if err := rows.Scan(&m.VisitorID, &m.Name, &m.Email, &m.PhoneNum, &m.BirthDate,
			&m.MembershipStartDate, &m.MembershipEndDate, &m.CreatedAt, &m.LastLoggedIn); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// EmployeeRow is one line of the employee roster: visitor details plus the
// role tier from credentials.
type EmployeeRow struct {
	VisitorID uint64    `json:"visitorID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhoneNum  string    `json:"phoneNumber"`
	Age       int       `json:"age"`
	BirthDate time.Time `json:"birthdate"`
	Role      int       `json:"role"`
}

// ListEmployees returns every account with a staff tier (role >= 1).
func (r *StaffRepo) ListEmployees(ctx context.Context) ([]EmployeeRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT v.VisitorID, v.Name, v.Email, v.PhoneNum, v.Age, v.BirthDate, c.role
		 FROM visitor v
		 JOIN credentials c ON v.VisitorID = c.visitorid
		 WHERE c.role >= ?
		 ORDER BY c.role DESC, v.Name`, model.RoleEmployee)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EmployeeRow
	for rows.Next() {
		var e EmployeeRow
		if err := rows.Scan(&e.VisitorID, &e.Name, &e.Email, &e.PhoneNum, &e.Age, &e.BirthDate, &e.Role); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateVisitor lets staff correct a visitor's contact details and
// membership window in one statement.
func (r *StaffRepo) UpdateVisitor(ctx context.Context, visitorID uint64, phone string, birthDate, memberStart, memberEnd time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE visitor
		 SET BirthDate=?, PhoneNum=?, membership_start_date=?, membership_end_date=?
		 WHERE VisitorID=?`,
		birthDate, phone, memberStart, memberEnd, visitorID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateEmployee rewrites an employee's details and role tier. Visitor and
// credentials change inside one transaction so the mirrored email and the
// tier can never half-apply.
func (r *StaffRepo) UpdateEmployee(ctx context.Context, visitorID uint64, name, email, phone string, age int, birthDate time.Time, role int) error {
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
		"UPDATE credentials SET email=?, role=? WHERE visitorid=?",
		email, role, visitorID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// DeleteEmployee removes the credentials row and then the visitor row in
// one transaction. Credentials go first to respect the foreign key; the
// rollback on failure means a half-deleted account cannot linger.
func (r *StaffRepo) DeleteEmployee(ctx context.Context, visitorID uint64) error {
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

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM credentials WHERE visitorid=?", visitorID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		"DELETE FROM visitor WHERE VisitorID=?", visitorID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
