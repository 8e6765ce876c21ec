package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrCityNotFound = errors.New("city not found")
	ErrFetchFailed  = errors.New("fetch failed")
)
