package models

import "errors"

var (
	ErrMissingID       = errors.New("policy record has no id")
	ErrMissingTitle    = errors.New("policy record has no title")
	ErrUnknownCategory = errors.New("policy record has unknown category")
)
