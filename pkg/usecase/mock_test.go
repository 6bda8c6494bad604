package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dd2482/submitcheck/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

// mockForge is a hand-rolled ForgeClient double recording every call
type mockForge struct {
	authenticated bool

	// read fixtures
	repos    map[string]bool // "owner/name" -> private; absent means lookup error
	files    []model.ChangedFile
	contents map[string]string // path -> raw content

	// forced failures
	listFilesErr error
	contentErr   error
	labelsErr    error
	commentErr   error
	statusErr    error

	// call records
	repoLookups    []string
	listFilesCalls int
	labelCalls     [][]string
	comments       []string
	statuses       []model.CommitStatus

	commentURL string
}

func newMockForge() *mockForge {
	return &mockForge{
		authenticated: true,
		repos:         map[string]bool{},
		contents:      map[string]string{},
		commentURL:    "https://github.test/comment/1",
	}
}

func (m *mockForge) Authenticated() bool {
	return m.authenticated
}

func (m *mockForge) GetRepository(ctx context.Context, owner, name string) (*model.RepoInfo, error) {
	full := owner + "/" + name
	m.repoLookups = append(m.repoLookups, full)

	private, ok := m.repos[full]
	if !ok {
		return nil, errors.New("repository lookup failed: " + full)
	}
	return &model.RepoInfo{FullName: full, Private: private}, nil
}

func (m *mockForge) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]model.ChangedFile, error) {
	m.listFilesCalls++
	if m.listFilesErr != nil {
		return nil, m.listFilesErr
	}
	return m.files, nil
}

func (m *mockForge) GetRawFileContent(ctx context.Context, owner, repo, ref, path string) (string, error) {
	if m.contentErr != nil {
		return "", m.contentErr
	}
	content, ok := m.contents[path]
	if !ok {
		return "", errors.New("no such file: " + path)
	}
	return content, nil
}

func (m *mockForge) SetLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	m.labelCalls = append(m.labelCalls, labels)
	return m.labelsErr
}

func (m *mockForge) PostComment(ctx context.Context, owner, repo string, number int, body string) (string, error) {
	m.comments = append(m.comments, body)
	if m.commentErr != nil {
		return "", m.commentErr
	}
	return m.commentURL, nil
}

func (m *mockForge) SetCommitStatus(ctx context.Context, owner, repo, sha string, status model.CommitStatus) error {
	m.statuses = append(m.statuses, status)
	return m.statusErr
}

// testPayload builds a payload the way the tool receives it, from JSON
func testPayload(t *testing.T, createdAt string) *model.Payload {
	t.Helper()

	data := `{
		"pull_request": {
			"number": 7,
			"created_at": "` + createdAt + `",
			"comments_url": "https://api.github.test/repos/kth-devops/course/issues/7/comments",
			"head": {"sha": "abc123", "ref": "submission"}
		},
		"repository": {
			"name": "course",
			"owner": {"login": "kth-devops"}
		}
	}`

	payload, err := model.ParsePayload([]byte(data))
	gt.NoError(t, err)
	return payload
}
