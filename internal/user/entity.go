// MentorHive | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	Role             string    `db:"role"`
	Bio              string    `db:"bio"`
	IsMentorApproved bool      `db:"is_mentor_approved"`
	Banned           bool      `db:"banned"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsMentor() bool {
	return u.Role == RoleMentor
}

const (
	RoleJunior = "junior"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)
