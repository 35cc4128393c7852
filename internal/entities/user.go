package entities

import "strings"

// User is an account identified by its email. Password holds the plain text
// only on the way in; stores persist PasswordHash and never return Password.
type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null" validate:"required,email,max=254"`
	Name         string `validate:"max=255"`
	Password     string `gorm:"-" json:"-" validate:"required,max=72"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func NewUser(email, name, password string) User {
	return User{Email: email, Name: name, Password: password}
}

// NormalizeEmail makes email comparison case-insensitive and ignores
// surrounding whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
