package validators

import (
	"context"
	"fmt"

	"github.com/mkondrashov/go-post-board/models"
)

// Field names accepted by [PostsValidator.Validate] for scoped checks.
const (
	FieldID     = "id"
	FieldUserID = "user_id"
	FieldTitle  = "title"
)

// PostsValidator checks that an upstream posts payload matches the
// contract of the demo API: positive identifiers and a non-empty title
// on every record.
type PostsValidator struct {
}

func NewPostsValidator() Validator {
	return &PostsValidator{}
}

func (v *PostsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	case []models.Post:
		for i, post := range value {
			if err := v.validatePost(ctx, post, fields...); err != nil {
				return fmt.Errorf("post %d: %w", i, err)
			}
		}
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PostsValidator) validatePost(_ context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if post.ID <= 0 {
				return ErrInvalidPostID
			}
		case FieldUserID:
			if post.UserID <= 0 {
				return ErrInvalidPostUserID
			}
		case FieldTitle:
			if post.Title == "" {
				return ErrEmptyPostTitle
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}
