package repositories

import (
	"context"

	"bloglist/app/models"
)

// BlogRepository defines the interface for blog data access
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByBlog(ctx context.Context, blogID string) ([]*models.Comment, error)
	DeleteByBlog(ctx context.Context, blogID string) error
}

// UserRepository defines the interface for user data access. Create fails
// with ErrDuplicateUsername when the username is taken. AppendBlog and
// RemoveBlog change a user's blog list atomically and return ErrNotFound
// for unknown users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	AppendBlog(ctx context.Context, userID, blogID string) (*models.User, error)
	RemoveBlog(ctx context.Context, userID, blogID string) error
}
