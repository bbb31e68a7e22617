package model

import "time"

// Role tiers stored in credentials.role. Access checks compare tiers
// numerically, so the ordering of these constants is significant.
const (
	RoleVisitor    = 0
	RoleEmployee   = 1
	RoleSupervisor = 2
	RoleManager    = 3
)

// Visitor represents a row in the `visitor` table. The membership window is
// a nullable pair: both dates are NULL for non-members and both are set for
// anyone who has ever bought a membership.
//
// Fields:
//
//	VisitorID           – primary key identifier.
//	Name                – display name.
//	Age                 – age in years at registration.
//	BirthDate           – date of birth.
//	Email               – unique email, mirrored in credentials.email.
//	PhoneNum            – contact phone number.
//	MembershipStartDate – start of the paid membership window (nullable).
//	MembershipEndDate   – end of the paid membership window (nullable).
//	CreatedAt           – timestamp of registration.
//	LastLoggedIn        – timestamp of the most recent login (nullable).
type Visitor struct {
	VisitorID           uint64     // visitor.VisitorID
	Name                string     // visitor.Name
	Age                 int        // visitor.Age
	BirthDate           time.Time  // visitor.BirthDate
	Email               string     // visitor.Email
	PhoneNum            string     // visitor.PhoneNum
	MembershipStartDate *time.Time // visitor.membership_start_date (nullable)
	MembershipEndDate   *time.Time // visitor.membership_end_date (nullable)
	CreatedAt           time.Time  // visitor.created_at
	LastLoggedIn        *time.Time // visitor.lastLoggedIn (nullable)
}

// Credential models a row in the `credentials` table. Exactly one row exists
// per visitor. The email column duplicates visitor.Email and is kept in sync
// inside the same database transaction whenever either side changes.
//
// Fields:
//
//	VisitorID    – owning visitor (primary key).
//	Email        – login email, mirrors visitor.Email.
//	PasswordHash – bcrypt hash of the password.
//	Role         – integer tier 0–3 (visitor/employee/supervisor/manager).
type Credential struct {
	VisitorID    uint64 // credentials.visitorid
	Email        string // credentials.email
	PasswordHash string // credentials.password
	Role         int    // credentials.role
}

// HasActiveMembership reports whether the visitor's membership window covers
// the given day. A window whose end date equals today is still active.
func (v Visitor) HasActiveMembership(today time.Time) bool {
	if v.MembershipStartDate == nil || v.MembershipEndDate == nil {
		return false
	}
	day := today.Truncate(24 * time.Hour)
	return !v.MembershipEndDate.Before(day)
}
