package enhance

import "errors"

var (
	// ErrUnknownStrategy is returned for strategy names outside the known set.
	ErrUnknownStrategy = errors.New("unknown enhancement strategy")

	// ErrEnhancementFailed is returned when a strategy could not produce an
	// enhanced query. Callers fall back to the original query; this error
	// never fails a search.
	ErrEnhancementFailed = errors.New("query enhancement failed")

	// ErrMissingCredentials is returned at construction time when a remote
	// strategy has no API key or endpoint configured.
	ErrMissingCredentials = errors.New("enhancement strategy credentials missing")
)
