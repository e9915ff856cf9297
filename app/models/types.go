package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Blog represents a blog entry. User holds the owning user's ID and is
// empty for blogs created without an owner.
type Blog struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Title     string    `json:"title" validate:"required"`
	Author    string    `json:"author"`
	URL       string    `json:"url" validate:"required"`
	Likes     int       `json:"likes"`
	User      string    `json:"user,omitempty" validate:"omitempty,uuid"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// Comment represents a comment attached to a blog.
type Comment struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Content   string    `json:"content" validate:"required"`
	Blog      string    `json:"blog" validate:"required,uuid"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// User represents a registered account. PasswordHash is persisted but never
// part of any formatted output.
type User struct {
	ID           string    `json:"id" validate:"required,uuid"`
	Username     string    `json:"username" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	PasswordHash string    `json:"passwordHash" validate:"required"`
	Adult        bool      `json:"adult"`
	Blogs        []string  `json:"blogs"`
	CreatedAt    time.Time `json:"createdAt" validate:"required"`
}
