package repositories

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicatePair means a result already exists for the (lead, offer)
	// pair. Concurrent scoring runs recover from it as "already scored".
	ErrDuplicatePair = errors.New("result already exists for this lead and offer")

	ErrDuplicateEmail = errors.New("account with this email already exists")
)
