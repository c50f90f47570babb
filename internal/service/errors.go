package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	Conflict            = 409
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrDuplicateVote   = errors.New("Duplicate vote detected")
	ErrImageNotFound   = errors.New("Image not found")
	ErrStatsNotFound   = errors.New("User stats not found")
	ErrInvalidPeriod   = errors.New("Invalid leaderboard period")
	ErrInvalidType     = errors.New("Invalid leaderboard type")
	ErrNotEnoughImages = errors.New("Not enough images in category")
	UnExpectedError    = errors.New("Internal server error")
)

var ErrorMap = map[error]int{
	ErrMissingFields:   BadRequest,
	ErrDuplicateVote:   Conflict,
	ErrImageNotFound:   NotFound,
	ErrStatsNotFound:   NotFound,
	ErrInvalidPeriod:   BadRequest,
	ErrInvalidType:     BadRequest,
	ErrNotEnoughImages: NotFound,
	UnExpectedError:    InternalServerError,
}
