package services

import (
	"context"
	"errors"
	"fmt"

	"bloglist/app/listhelper"
	"bloglist/app/models"
	"bloglist/app/repositories"

	"github.com/rs/zerolog"
)

// BlogService handles business logic for blogs
type BlogService struct {
	blogRepo    repositories.BlogRepository
	userRepo    repositories.UserRepository
	commentRepo repositories.CommentRepository
	log         zerolog.Logger
}

// BlogStats summarises all stored blogs. Pointer fields are nil when there
// are no blogs.
type BlogStats struct {
	TotalLikes   int                     `json:"totalLikes"`
	FavoriteBlog *listhelper.Favorite    `json:"favoriteBlog"`
	MostBlogs    *listhelper.AuthorBlogs `json:"mostBlogs"`
	MostLikes    *listhelper.AuthorLikes `json:"mostLikes"`
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository, commentRepo repositories.CommentRepository, log zerolog.Logger) *BlogService {
	return &BlogService{
		blogRepo:    blogRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		log:         log,
	}
}

// ListBlogs returns every blog with its owner populated
func (s *BlogService) ListBlogs(ctx context.Context) ([]models.FormattedBlog, error) {
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	owners := make(map[string]*models.User)
	out := make([]models.FormattedBlog, 0, len(blogs))
	for _, blog := range blogs {
		owner, err := s.cachedOwner(ctx, owners, blog)
		if err != nil {
			return nil, err
		}
		out = append(out, models.FormatBlog(blog, owner))
	}
	return out, nil
}

// GetBlog returns one blog with its owner populated
func (s *BlogService) GetBlog(ctx context.Context, id string) (models.FormattedBlog, error) {
	if err := parseID(id); err != nil {
		return models.FormattedBlog{}, err
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.FormattedBlog{}, ErrNotFound
	}
	if err != nil {
		return models.FormattedBlog{}, fmt.Errorf("failed to get blog %s: %w", id, err)
	}

	owner, err := s.owner(ctx, blog)
	if err != nil {
		return models.FormattedBlog{}, err
	}
	return models.FormatBlog(blog, owner), nil
}

// CreateBlog stores a blog owned by userID and links it to the owner.
//
// The two writes are not atomic. If linking fails after the blog is stored,
// the blog remains without an entry in the owner's list and the returned
// error wraps ErrOwnerLinkFailed.
func (s *BlogService) CreateBlog(ctx context.Context, userID string, in *models.BlogInput) (models.FormattedBlog, error) {
	if userID == "" {
		return models.FormattedBlog{}, ErrUnauthenticated
	}
	if err := in.ValidateCreate(); err != nil {
		return models.FormattedBlog{}, ErrContentMissing
	}

	blog := &models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.LikesOrZero(),
		User:   userID,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return models.FormattedBlog{}, fmt.Errorf("failed to create blog: %w", err)
	}

	owner, err := s.userRepo.AppendBlog(ctx, userID, blog.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		s.log.Warn().Str("blog", blog.ID).Str("user", userID).Msg("blog owner does not exist, skipping owner link")
		return models.FormatBlog(blog, nil), nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("blog", blog.ID).Str("user", userID).Msg("orphaned blog: owner link failed")
		return models.FormattedBlog{}, fmt.Errorf("%w: blog %s: %v", ErrOwnerLinkFailed, blog.ID, err)
	}

	return models.FormatBlog(blog, owner), nil
}

// UpdateBlog replaces title, author, url and likes of an existing blog.
// Every lookup or store failure is reported as ErrMalformedID.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, in *models.BlogInput) (models.FormattedBlog, error) {
	if err := in.ValidateUpdate(); err != nil {
		return models.FormattedBlog{}, ErrBlogFieldsMissing
	}
	if err := parseID(id); err != nil {
		return models.FormattedBlog{}, err
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return models.FormattedBlog{}, fmt.Errorf("%w: %v", ErrMalformedID, err)
	}

	blog.Replace(in)
	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return models.FormattedBlog{}, fmt.Errorf("%w: %v", ErrMalformedID, err)
	}

	owner, err := s.owner(ctx, blog)
	if err != nil {
		return models.FormattedBlog{}, fmt.Errorf("%w: %v", ErrMalformedID, err)
	}
	return models.FormatBlog(blog, owner), nil
}

// DeleteBlog removes a blog. A blog with an owner can only be removed by
// that owner; an ownerless blog can be removed by anyone.
func (s *BlogService) DeleteBlog(ctx context.Context, userID, id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedID, err)
	}

	if blog.HasOwner() {
		if userID == "" {
			return ErrUnauthenticated
		}
		if !blog.OwnedBy(userID) {
			return ErrNotAllowed
		}
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedID, err)
	}

	if err := s.commentRepo.DeleteByBlog(ctx, id); err != nil {
		s.log.Error().Err(err).Str("blog", id).Msg("failed to delete comments of removed blog")
	}
	if blog.HasOwner() {
		s.unlinkOwner(ctx, blog)
	}
	return nil
}

// Stats runs the list helpers over every stored blog
func (s *BlogService) Stats(ctx context.Context) (BlogStats, error) {
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return BlogStats{}, fmt.Errorf("failed to list blogs: %w", err)
	}

	stats := BlogStats{TotalLikes: listhelper.TotalLikes(blogs)}
	if fav, ok := listhelper.FavoriteBlog(blogs); ok {
		stats.FavoriteBlog = &fav
	}
	if most, ok := listhelper.MostBlogs(blogs); ok {
		stats.MostBlogs = &most
	}
	if most, ok := listhelper.MostLikes(blogs); ok {
		stats.MostLikes = &most
	}
	return stats, nil
}

func (s *BlogService) unlinkOwner(ctx context.Context, blog *models.Blog) {
	err := s.userRepo.RemoveBlog(ctx, blog.User, blog.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		s.log.Warn().Str("blog", blog.ID).Str("user", blog.User).Msg("owner of removed blog not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("blog", blog.ID).Str("user", blog.User).Msg("failed to unlink removed blog from owner")
	}
}

// owner loads the blog's owner. A missing owner is not an error.
func (s *BlogService) owner(ctx context.Context, blog *models.Blog) (*models.User, error) {
	if !blog.HasOwner() {
		return nil, nil
	}
	user, err := s.userRepo.GetByID(ctx, blog.User)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to populate owner of blog %s: %w", blog.ID, err)
	}
	return user, nil
}

func (s *BlogService) cachedOwner(ctx context.Context, cache map[string]*models.User, blog *models.Blog) (*models.User, error) {
	if owner, ok := cache[blog.User]; ok {
		return owner, nil
	}
	owner, err := s.owner(ctx, blog)
	if err != nil {
		return nil, err
	}
	cache[blog.User] = owner
	return owner, nil
}
