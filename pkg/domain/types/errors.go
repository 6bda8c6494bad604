package types

import "github.com/m-mizutani/goerr/v2"

// The closed set of validation failures. Every rejection wraps exactly one of
// these sentinels so callers can classify with errors.Is; anything else coming
// out of a run is an infrastructure failure from the forge.
var (
	ErrMalformedPayload   = goerr.New("malformed webhook payload")
	ErrMalformedTimestamp = goerr.New("malformed timestamp")
	ErrAfterDeadline      = goerr.New("pull request after deadline")
	ErrNoContent          = goerr.New("pull request did not have any committed files")
	ErrUnclearStage       = goerr.New("cannot evaluate whether pull request is a final submission or a proposal, please state it explicitly")
	ErrMissingRepo        = goerr.New("no repository url found in pull request, please provide one or clearly state that it is only a proposal")
	ErrPrivateRepo        = goerr.New("provided repository is not public")
	ErrMissingCredential  = goerr.New("no github credential provided")
)
