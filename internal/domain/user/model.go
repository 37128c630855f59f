package user

import (
	"time"

	"github.com/hirestream/hirestream/internal/types"
)

// User is an HR staff account. Candidates are Persons, not Users.
type User struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	types.BaseModel
}

func NewUser(email, tenantID string) *User {
	now := time.Now().UTC()
	return &User{
		ID:    types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email: email,
		BaseModel: types.BaseModel{
			TenantID:  tenantID,
			Status:    types.StatusPublished,
			CreatedBy: types.DefaultUserID,
			UpdatedBy: types.DefaultUserID,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
