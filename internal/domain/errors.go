package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrConnectionNotFound   = errors.New("connection not found")
	ErrConnectionExists     = errors.New("connection already exists")
	ErrConnectionNotPending = errors.New("connection is not pending")
	ErrCannotConnectSelf    = errors.New("cannot connect to yourself")
	ErrNotConnected         = errors.New("users are not connected")
	ErrReviewExists         = errors.New("review already exists")
	ErrReviewNotFound       = errors.New("review not found")
	ErrCannotReviewSelf     = errors.New("cannot review yourself")
	ErrPageOutOfRange       = errors.New("page out of range")
	ErrAIUnavailable        = errors.New("ai assistant is not configured")
	ErrInvalidInput         = errors.New("invalid input")
)
