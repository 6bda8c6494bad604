package interfaces

import (
	"context"

	"github.com/dd2482/submitcheck/pkg/domain/model"
)

// ForgeClient defines the operations the validation pipeline needs from the
// remote code-hosting platform. Read operations work without a credential;
// write operations require one, which is checked by the reporter before any
// write is attempted.
type ForgeClient interface {
	// Authenticated reports whether the client carries a credential
	Authenticated() bool

	// GetRepository fetches repository metadata. An absent or unknown
	// visibility field is reported as private (fail closed).
	GetRepository(ctx context.Context, owner, name string) (*model.RepoInfo, error)

	// ListChangedFiles lists the files changed by a pull request
	ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]model.ChangedFile, error)

	// GetRawFileContent fetches the raw content of a file at a ref
	GetRawFileContent(ctx context.Context, owner, repo, ref, path string) (string, error)

	// SetLabels adds labels to a pull request
	SetLabels(ctx context.Context, owner, repo string, number int, labels []string) error

	// PostComment posts a comment on a pull request and returns its URL
	PostComment(ctx context.Context, owner, repo string, number int, body string) (string, error)

	// SetCommitStatus sets a commit status on the given SHA
	SetCommitStatus(ctx context.Context, owner, repo, sha string, status model.CommitStatus) error
}
