package errors

import "errors"

var (
	// ErrMediaFileNotFound indicates the requested media file does not exist
	ErrMediaFileNotFound = errors.New("media file not found")

	// ErrObjectExists indicates an object already occupies the storage key
	ErrObjectExists = errors.New("object already exists at storage key")
)
