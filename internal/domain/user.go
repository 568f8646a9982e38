package domain

import "time"

const RoleAdmin = "admin"

type User struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Name      string    `json:"nome"`
	Password  string    `json:"-"`
	Role      string    `json:"perfil"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
