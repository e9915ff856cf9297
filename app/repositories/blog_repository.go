package repositories

import (
	"context"
	"fmt"

	"bloglist/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// Create assigns an ID and stores a new blog
func (r *BadgerBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	id, err := newID()
	if err != nil {
		return err
	}
	blog.ID = id
	blog.BeforeCreate()
	if err := blog.Validate(); err != nil {
		return fmt.Errorf("invalid blog: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return setEntity(txn, blogKey(blog.ID), blog)
	})
}

// GetByID retrieves a blog by ID
func (r *BadgerBlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var blog models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, blogKey(id), &blog)
	})
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// List retrieves all blogs in creation order
func (r *BadgerBlogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	blogs := []*models.Blog{}
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, []byte(BlogKeyPrefix), func(val []byte) error {
			var blog models.Blog
			if err := unmarshalEntity(val, &blog); err != nil {
				return fmt.Errorf("failed to unmarshal blog: %v", err)
			}
			blogs = append(blogs, &blog)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Update replaces an existing blog
func (r *BadgerBlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := blogKey(blog.ID)

		// Verify blog exists
		var existing models.Blog
		if err := getEntity(txn, key, &existing); err != nil {
			return err
		}

		return setEntity(txn, key, blog)
	})
}

// Delete deletes a blog by ID
func (r *BadgerBlogRepository) Delete(ctx context.Context, id string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := blogKey(id)

		// Verify blog exists
		if _, err := txn.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}

		return txn.Delete(key)
	})
}
