package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPostID     = errors.New("invalid post ID")
	ErrInvalidPostUserID = errors.New("invalid post user ID")
	ErrEmptyPostTitle    = errors.New("post title is required")
)
