package model

import (
	"encoding/json"
	"time"

	"github.com/dd2482/submitcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Payload is the pull_request webhook event as delivered by the forge. Only
// the fields the validation pipeline consumes are decoded; the value is
// treated as read-only input for the whole run.
type Payload struct {
	PullRequest *PullRequest `json:"pull_request"`
	Repository  *Repository  `json:"repository"`
}

// PullRequest holds the pull request fields consumed from the payload
type PullRequest struct {
	Number      int     `json:"number"`
	Body        string  `json:"body"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	CommentsURL string  `json:"comments_url"`
	Head        *Branch `json:"head"`
}

// Branch identifies the head of the pull request
type Branch struct {
	SHA string `json:"sha"`
	Ref string `json:"ref"`
}

// Repository is the repository the pull request was opened against
type Repository struct {
	Name  string   `json:"name"`
	Owner *Account `json:"owner"`
}

// Account is a user or organization login
type Account struct {
	Login string `json:"login"`
}

// ParsePayload decodes a webhook event document and verifies the mandatory
// fields are present: creation timestamp, repository name, owner login and
// head commit SHA. Optional fields may be absent and read as zero values.
func ParsePayload(data []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "failed to decode payload JSON", goerr.V("cause", err.Error()))
	}

	if p.PullRequest == nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "payload has no pull_request")
	}
	if p.PullRequest.CreatedAt == "" {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "pull_request.created_at is missing")
	}
	if p.Repository == nil || p.Repository.Name == "" {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "repository.name is missing")
	}
	if p.Repository.Owner == nil || p.Repository.Owner.Login == "" {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "repository.owner.login is missing")
	}
	if p.PullRequest.Head == nil || p.PullRequest.Head.SHA == "" {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "pull_request.head.sha is missing")
	}

	return &p, nil
}

// CreatedAt returns the pull request creation timestamp
func (p *Payload) CreatedAt() (time.Time, error) {
	return ParseTimestamp(p.PullRequest.CreatedAt)
}

// EffectiveCreatedAt returns the timestamp used for deadline checks: the
// later of the creation and last-update timestamps, so a pull request edited
// after opening counts from the edit.
func (p *Payload) EffectiveCreatedAt() (time.Time, error) {
	created, err := p.CreatedAt()
	if err != nil {
		return time.Time{}, err
	}

	if p.PullRequest.UpdatedAt == "" {
		return created, nil
	}

	updated, err := ParseTimestamp(p.PullRequest.UpdatedAt)
	if err != nil {
		return time.Time{}, err
	}

	if updated.After(created) {
		return updated, nil
	}
	return created, nil
}

// Owner returns the owner login of the repository the PR targets
func (p *Payload) Owner() string {
	return p.Repository.Owner.Login
}

// RepoName returns the name of the repository the PR targets
func (p *Payload) RepoName() string {
	return p.Repository.Name
}

// HeadSHA returns the head commit of the pull request
func (p *Payload) HeadSHA() string {
	return p.PullRequest.Head.SHA
}

// HeadRef returns the head branch name, or "" when absent
func (p *Payload) HeadRef() string {
	if p.PullRequest.Head == nil {
		return ""
	}
	return p.PullRequest.Head.Ref
}

// Number returns the pull request number
func (p *Payload) Number() int {
	return p.PullRequest.Number
}

// Body returns the pull request description text, or "" when absent
func (p *Payload) Body() string {
	return p.PullRequest.Body
}

// CommentsURL returns the comment-posting endpoint of the pull request
func (p *Payload) CommentsURL() string {
	return p.PullRequest.CommentsURL
}
