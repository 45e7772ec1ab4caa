package services

import "errors"

var (
	// ErrMalformedUpload rejects a whole lead upload: ingestion is
	// all-or-nothing, nothing is persisted from an unparseable file.
	ErrMalformedUpload = errors.New("malformed lead upload")

	// ErrOfferNotFound means the scoring target could not be resolved.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrNothingToScore is the "nothing to do" outcome of a scoring run:
	// every lead already has a result for the offer. It is not a failure.
	ErrNothingToScore = errors.New("no unscored leads for this offer")

	// ErrQuotaExhausted means the classifier backend rejected the call for
	// rate-limit or quota reasons; likely affects the whole batch.
	ErrQuotaExhausted = errors.New("classifier quota exhausted")

	// ErrUpstreamCallFailed is a transient, pair-specific classifier
	// failure (transport error, timeout, bad upstream response).
	ErrUpstreamCallFailed = errors.New("classifier call failed")
)
