package model

import "time"

// Stage is the declared purpose of a submission pull request
type Stage string

const (
	StageProposal        Stage = "proposal"
	StageFinalSubmission Stage = "final_submission"
	StageUnknown         Stage = "unknown"
)

// RepoReference is an (owner, name) pair extracted from pull request text.
// Equality is structural; collections are de-duplicated on the pair.
type RepoReference struct {
	Owner string
	Name  string
}

// String returns the owner/name form
func (r RepoReference) String() string {
	return r.Owner + "/" + r.Name
}

// ValidationResult is the verdict of one validation run. It is built once by
// the validation engine and only read afterwards. On rejection it still
// carries whatever findings were accumulated before the failing step, so the
// reporter can surface them to the author.
type ValidationResult struct {
	Accepted  bool
	Stage     Stage
	CreatedAt time.Time // effective creation timestamp, zero if never computed
	Repos     []string  // referenced repository names, sorted
}

// ChangedFile is one entry of a pull request file listing
type ChangedFile struct {
	Path   string
	Status string // added, modified, removed, renamed, ...
}

// RepoInfo is the repository metadata consumed from the forge
type RepoInfo struct {
	FullName string
	Private  bool
}

// CommitStatusState is the forge's commit status vocabulary
type CommitStatusState string

const (
	StatusSuccess CommitStatusState = "success"
	StatusFailure CommitStatusState = "failure"
)

// CommitStatus is a commit status write request
type CommitStatus struct {
	State       CommitStatusState
	Description string
	TargetURL   string // optional link, usually the verdict comment
}
