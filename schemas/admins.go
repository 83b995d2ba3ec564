package schemas

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
)

var AdminRoles = []string{RoleAdmin, RoleManager, RoleAgent}

func IsValidAdminRole(r string) bool { return slices.Contains(AdminRoles, r) }

// Admin is a dashboard account. Password holds only the bcrypt hash and is
// never serialized to JSON.
type Admin struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username  string        `json:"username" bson:"username"`
	Email     string        `json:"email" bson:"email"`
	Password  string        `json:"-" bson:"password"`
	FullName  string        `json:"fullName" bson:"full_name"`
	Role      string        `json:"role" bson:"role"`
	IsActive  bool          `json:"isActive" bson:"is_active"`
	LastLogin *time.Time    `json:"lastLogin,omitempty" bson:"last_login,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}

// AdminProfile is the sanitized shape returned by login, /me and the user
// listing.
type AdminProfile struct {
	ID        bson.ObjectID `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FullName  string        `json:"fullName"`
	Role      string        `json:"role"`
	IsActive  bool          `json:"isActive"`
	LastLogin *time.Time    `json:"lastLogin,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FullName:  a.FullName,
		Role:      a.Role,
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}
