package services

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotProjectOwner = errors.New("only the project owner can do that")
	ErrProfileNotFound = errors.New("profile not found")
)
