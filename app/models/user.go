package models

import (
	"errors"
	"time"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.Blogs == nil {
		u.Blogs = []string{}
	}
}

// AddBlog appends a blog ID to the user's blog list
func (u *User) AddBlog(blogID string) error {
	if blogID == "" {
		return errors.New("blog id cannot be empty")
	}

	u.Blogs = append(u.Blogs, blogID)
	return nil
}

// RemoveBlog removes a blog ID from the user's blog list
func (u *User) RemoveBlog(blogID string) error {
	for i, id := range u.Blogs {
		if id == blogID {
			u.Blogs = append(u.Blogs[:i], u.Blogs[i+1:]...)
			return nil
		}
	}
	return errors.New("blog not found")
}
