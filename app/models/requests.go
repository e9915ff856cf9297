package models

import "fmt"

// BlogInput is the payload accepted when creating or replacing a blog.
type BlogInput struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	URL    string `json:"url" validate:"required"`
	Likes  *int   `json:"likes"`
}

// ValidateCreate requires title and url. Author is optional on creation.
func (in *BlogInput) ValidateCreate() error {
	return validate.StructPartial(in, "Title", "URL")
}

// ValidateUpdate requires title, author and url.
func (in *BlogInput) ValidateUpdate() error {
	return validate.StructPartial(in, "Title", "Author", "URL")
}

// LikesOrZero returns the submitted like count, or 0 when it was omitted.
func (in *BlogInput) LikesOrZero() int {
	if in.Likes == nil {
		return 0
	}
	return *in.Likes
}

// CommentInput is the payload accepted when creating a comment.
type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

// Validate checks that content is present.
func (in *CommentInput) Validate() error {
	return validate.Struct(in)
}

// MinPasswordLength is the shortest raw password accepted at registration.
const MinPasswordLength = 3

// UserInput is the registration payload.
type UserInput struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Adult    *bool  `json:"adult"`
}

// Validate checks that username, name and password are present.
func (in *UserInput) Validate() error {
	return validate.Struct(in)
}

// ValidatePassword checks the raw password length.
func (in *UserInput) ValidatePassword() error {
	return validate.Var(in.Password, fmt.Sprintf("min=%d", MinPasswordLength))
}

// AdultOrDefault returns the submitted adult flag, defaulting to true.
func (in *UserInput) AdultOrDefault() bool {
	if in.Adult == nil {
		return true
	}
	return *in.Adult
}

// LoginInput is the credential payload for POST /api/login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
