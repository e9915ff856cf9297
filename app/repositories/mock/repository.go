// Package mock provides in-memory repositories for service and controller
// tests.
package mock

import (
	"context"
	"sync"

	"bloglist/app/models"
	"bloglist/app/repositories"

	"github.com/google/uuid"
)

type BlogRepository struct {
	blogs map[string]*models.Blog
	order []string
	mutex sync.RWMutex

	// Err, when set, is returned by every method.
	Err error
}

type CommentRepository struct {
	comments []*models.Comment
	mutex    sync.RWMutex

	Err error
}

type UserRepository struct {
	users map[string]*models.User
	order []string
	mutex sync.RWMutex

	// Err, when set, is returned by every method.
	Err error
	// LinkErr, when set, is returned by AppendBlog and RemoveBlog only.
	LinkErr error
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{blogs: make(map[string]*models.Blog)}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func (m *BlogRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.blogs = make(map[string]*models.Blog)
	m.order = nil
}

// BlogRepository implementation
func (m *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	blog.ID = uuid.NewString()
	blog.BeforeCreate()
	stored := *blog
	m.blogs[blog.ID] = &stored
	m.order = append(m.order, blog.ID)
	return nil
}

func (m *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	out := *blog
	return &out, nil
}

func (m *BlogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	blogs := []*models.Blog{}
	for _, id := range m.order {
		if blog, exists := m.blogs[id]; exists {
			out := *blog
			blogs = append(blogs, &out)
		}
	}
	return blogs, nil
}

func (m *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.blogs[blog.ID]; !exists {
		return repositories.ErrNotFound
	}
	stored := *blog
	m.blogs[blog.ID] = &stored
	return nil
}

func (m *BlogRepository) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.blogs[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

// CommentRepository implementation
func (m *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	comment.ID = uuid.NewString()
	comment.BeforeCreate()
	stored := *comment
	m.comments = append(m.comments, &stored)
	return nil
}

func (m *CommentRepository) ListByBlog(ctx context.Context, blogID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	comments := []*models.Comment{}
	for _, comment := range m.comments {
		if comment.Blog == blogID {
			out := *comment
			comments = append(comments, &out)
		}
	}
	return comments, nil
}

func (m *CommentRepository) DeleteByBlog(ctx context.Context, blogID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	kept := m.comments[:0]
	for _, comment := range m.comments {
		if comment.Blog != blogID {
			kept = append(kept, comment)
		}
	}
	m.comments = kept
	return nil
}

// UserRepository implementation
func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return repositories.ErrDuplicateUsername
		}
	}
	user.ID = uuid.NewString()
	user.BeforeCreate()
	m.users[user.ID] = copyUser(user)
	m.order = append(m.order, user.ID)
	return nil
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return copyUser(user), nil
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, user := range m.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	users := []*models.User{}
	for _, id := range m.order {
		users = append(users, copyUser(m.users[id]))
	}
	return users, nil
}

func (m *UserRepository) AppendBlog(ctx context.Context, userID, blogID string) (*models.User, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.LinkErr != nil {
		return nil, m.LinkErr
	}
	user, exists := m.users[userID]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	if err := user.AddBlog(blogID); err != nil {
		return nil, err
	}
	return copyUser(user), nil
}

func (m *UserRepository) RemoveBlog(ctx context.Context, userID, blogID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if m.LinkErr != nil {
		return m.LinkErr
	}
	user, exists := m.users[userID]
	if !exists {
		return repositories.ErrNotFound
	}
	_ = user.RemoveBlog(blogID)
	return nil
}

func copyUser(user *models.User) *models.User {
	out := *user
	out.Blogs = append([]string{}, user.Blogs...)
	return &out
}

var (
	_ repositories.BlogRepository    = (*BlogRepository)(nil)
	_ repositories.CommentRepository = (*CommentRepository)(nil)
	_ repositories.UserRepository    = (*UserRepository)(nil)
)
