package service

import (
	"errors"
	"strings"
)

// All input validations should be added here.

var (
	ErrEmptyContent = errors.New("comment text is empty")
	ErrMissingPost  = errors.New("post id is empty")
	ErrNotLoggedIn  = errors.New("not logged in")
)

func ValidateCreateCommentRequest(postId, content string) error {
	if len(postId) == 0 {
		return ErrMissingPost
	}
	if len(strings.TrimSpace(content)) == 0 {
		return ErrEmptyContent
	}
	return nil
}

func ValidateEditCommentRequest(commentId, content string) error {
	if len(commentId) == 0 {
		return errors.New("comment id is empty")
	}
	if len(strings.TrimSpace(content)) == 0 {
		return ErrEmptyContent
	}
	return nil
}
