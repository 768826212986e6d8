package fields

import "errors"

var (
	ErrInvalidForm          = errors.New("invalid form data")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
