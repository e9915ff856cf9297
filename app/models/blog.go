package models

import (
	"errors"
	"time"
)

// Validate checks if the blog meets all validation requirements
func (b *Blog) Validate() error {
	if err := validate.Struct(b); err != nil {
		return err
	}

	if b.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (b *Blog) BeforeCreate() {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
}

// HasOwner reports whether the blog is owned by a user.
func (b *Blog) HasOwner() bool {
	return b.User != ""
}

// OwnedBy reports whether userID owns the blog.
func (b *Blog) OwnedBy(userID string) bool {
	return b.HasOwner() && b.User == userID
}

// Replace overwrites the mutable fields with the given input. Owner and
// creation time are kept, and so are likes when the input omits them.
func (b *Blog) Replace(in *BlogInput) {
	b.Title = in.Title
	b.Author = in.Author
	b.URL = in.URL
	if in.Likes != nil {
		b.Likes = *in.Likes
	}
}
