package repositories

import (
	"context"
	"errors"
	"fmt"

	"bloglist/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB. A
// username index key enforces uniqueness inside the create transaction.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create stores a new user and its username index entry
func (r *BadgerUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	id, err := newID()
	if err != nil {
		return err
	}
	user.ID = id
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		indexKey := usernameKey(user.Username)
		_, err := txn.Get(indexKey)
		if err == nil {
			return ErrDuplicateUsername
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(indexKey, []byte(user.ID)); err != nil {
			return err
		}
		return setEntity(txn, userKey(user.ID), user)
	})
	if errors.Is(err, badger.ErrConflict) {
		return ErrDuplicateUsername
	}
	return err
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, userKey(id), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by exact, case-sensitive username
func (r *BadgerUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getEntity(txn, userKey(string(id)), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users in creation order
func (r *BadgerUserRepository) List(ctx context.Context) ([]*models.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	users := []*models.User{}
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, []byte(UserKeyPrefix), func(val []byte) error {
			var user models.User
			if err := unmarshalEntity(val, &user); err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			users = append(users, &user)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// maxConflictRetries bounds how often a blog list change is retried after
// losing a transaction conflict.
const maxConflictRetries = 100

// AppendBlog adds blogID to the user's blog list and returns the updated user
func (r *BadgerUserRepository) AppendBlog(ctx context.Context, userID, blogID string) (*models.User, error) {
	return r.modifyBlogs(ctx, userID, func(user *models.User) error {
		return user.AddBlog(blogID)
	})
}

// RemoveBlog drops blogID from the user's blog list. An id that is not in
// the list is ignored.
func (r *BadgerUserRepository) RemoveBlog(ctx context.Context, userID, blogID string) error {
	_, err := r.modifyBlogs(ctx, userID, func(user *models.User) error {
		_ = user.RemoveBlog(blogID)
		return nil
	})
	return err
}

// modifyBlogs reads, changes and writes a user in one transaction, retrying
// when a concurrent writer commits first.
func (r *BadgerUserRepository) modifyBlogs(ctx context.Context, userID string, fn func(*models.User) error) (*models.User, error) {
	for attempt := 0; ; attempt++ {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		var user models.User
		err := r.db.Update(func(txn *badger.Txn) error {
			key := userKey(userID)
			if err := getEntity(txn, key, &user); err != nil {
				return err
			}
			if err := fn(&user); err != nil {
				return err
			}
			return setEntity(txn, key, &user)
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	}
}
