package services

import (
	"context"
	"fmt"

	"bloglist/app/models"
	"bloglist/app/repositories"

	"github.com/rs/zerolog"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	log         zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, log zerolog.Logger) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		log:         log,
	}
}

// ListComments returns the comments of a blog keyed by the blog id. A blog
// without comments yields an empty map.
func (s *CommentService) ListComments(ctx context.Context, blogID string) (map[string][]models.FormattedComment, error) {
	if err := parseID(blogID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for blog %s: %w", blogID, err)
	}
	return models.GroupComments(comments), nil
}

// CreateComment attaches a comment to a blog. The blog's existence is not
// checked.
func (s *CommentService) CreateComment(ctx context.Context, blogID string, in *models.CommentInput) (map[string]models.FormattedComment, error) {
	if err := in.Validate(); err != nil {
		return nil, ErrContentMissing
	}
	if err := parseID(blogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		Blog:    blogID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.log.Debug().Str("blog", blogID).Str("comment", comment.ID).Msg("comment created")
	return models.FormatComment(comment), nil
}
