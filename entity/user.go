package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleStudent     Role = "Student"
	RoleStaff       Role = "Staff"
	RoleProfessor   Role = "Professor"
	RoleAdmin       Role = "Admin"
	RoleEventOffice Role = "EventOffice"
	RoleVendor      Role = "Vendor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleProfessor, RoleAdmin, RoleEventOffice, RoleVendor:
		return true
	}
	return false
}

// CanReviewApplications reports whether the role may act on vendor
// applications and read the admin notification inbox.
func (r Role) CanReviewApplications() bool {
	return r == RoleAdmin || r == RoleEventOffice
}

// PrincipalModel names the collection an authenticated principal lives in.
// Tokens carry only the principal id and model; the role is re-derived from
// the stored document on every request.
type PrincipalModel string

const (
	PrincipalUser   PrincipalModel = "user"
	PrincipalVendor PrincipalModel = "vendor"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	Role         Role          `bson:"role" json:"role"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// Vendor is a vendor-company account. Its affiliation is the organization
// name it registered with; the organization document itself is created
// lazily on the first application.
type Vendor struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	Organization string        `bson:"organization,omitempty" json:"organization,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// Principal is the authenticated actor attached to a request after token
// verification.
type Principal struct {
	ID    bson.ObjectID
	Model PrincipalModel
	Role  Role
	Name  string
	Email string
}
