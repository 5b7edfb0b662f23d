package models

import "time"

type User struct {
	ID           string    `bson:"_id" db:"id"`
	Email        string    `bson:"email" db:"email"`
	Username     string    `bson:"username" db:"username"`
	PasswordHash string    `bson:"password_hash" db:"password_hash"`
	CreatedAt    time.Time `bson:"created_at" db:"created_at"`
	LastLogin    time.Time `bson:"last_login" db:"last_login"`
}

// SessionUser is the authenticated caller as carried by the session cookie.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (u User) Session() SessionUser {
	return SessionUser{ID: u.ID, Email: u.Email, Username: u.Username}
}

type SignUpForm struct {
	Username string `form:"name" validate:"required,max=64"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}
