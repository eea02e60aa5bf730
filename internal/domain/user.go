package domain

import "time"

// Tipos de usuario reconocidos por el sistema.
const (
	UserTypeAdmin         = "admin"
	UserTypeRecruiter     = "recruiter"
	UserTypeTechnicalLead = "technical-lead"
)

// Estados de ciclo de vida de una cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	ID                   string     `json:"id"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	UserName             string     `json:"userName"`
	UserType             string     `json:"userType"`
	UserStatus           string     `json:"userStatus"`
	Department           string     `json:"department,omitempty"`
	UserRole             string     `json:"userRole,omitempty"`
	AvatarURL            string     `json:"avatarUrl,omitempty"`
	PhoneNumber          string     `json:"phoneNumber,omitempty"`
	ResetTokenHash       string     `json:"-"`
	ResetTokenExpiresAt  *time.Time `json:"-"`
	LastLoginAt          *time.Time `json:"lastLoginTime,omitempty"`
	FailedLoginAttempts  int        `json:"failedLoginAttempts"`
	LastPasswordChangeAt time.Time  `json:"lastPasswordChange"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// ValidUserType verifica que el tipo pertenezca al conjunto cerrado.
func ValidUserType(t string) bool {
	switch t {
	case UserTypeAdmin, UserTypeRecruiter, UserTypeTechnicalLead:
		return true
	}
	return false
}
