package errorvalues

import "errors"

var (
	ErrRecordNotFound     = errors.New("record doesn't exist")
	ErrInvalidRecord      = errors.New("record failed validation")
	ErrFileTypeNotAllowed = errors.New("file type isn't allowed")
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrNoFile             = errors.New("no file uploaded")
)
