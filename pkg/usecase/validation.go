package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dd2482/submitcheck/pkg/domain/model"
	"github.com/dd2482/submitcheck/pkg/domain/types"
	"github.com/dd2482/submitcheck/pkg/utils/mdscan"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// contentSeparator joins the markdown files committed by a pull request into
// the single text the extractors run over
const contentSeparator = "\n\n"

// Validate runs the ordered decision procedure over a pull request payload.
// The returned result is always non-nil and carries the findings accumulated
// up to the failing step, so partial findings are reported on rejection too.
// Cheap local checks run first; repository visibility checks, the only step
// needing extra network calls, run last.
func (uc *UseCase) Validate(ctx context.Context, deadline time.Time, payload *model.Payload) (*model.ValidationResult, error) {
	logger := ctxlog.From(ctx)
	result := &model.ValidationResult{Stage: model.StageUnknown}

	createdAt, err := payload.EffectiveCreatedAt()
	if err != nil {
		return result, err
	}
	result.CreatedAt = createdAt

	if createdAt.After(deadline) {
		return result, goerr.Wrap(types.ErrAfterDeadline,
			"pull request after deadline: "+deadline.UTC().Format(time.RFC3339),
			goerr.V("deadline", deadline), goerr.V("created_at", createdAt))
	}

	content, err := uc.fetchMarkdownContent(ctx, payload)
	if err != nil {
		return result, err
	}

	result.Stage = mdscan.ExtractStage(content)
	refs := mdscan.ExtractRepoRefs(content, uc.courseOrg)
	result.Repos = repoNames(refs)

	logger.Debug("extracted submission facts",
		"stage", result.Stage,
		"repos", result.Repos,
		"created_at", createdAt,
	)

	if len(refs) == 0 && result.Stage == model.StageFinalSubmission {
		return result, goerr.Wrap(types.ErrMissingRepo, "final submission has no repository url")
	}

	if result.Stage == model.StageUnknown {
		return result, goerr.Wrap(types.ErrUnclearStage, "no explicit stage declaration found")
	}

	for _, ref := range refs {
		info, err := uc.forge.GetRepository(ctx, ref.Owner, ref.Name)
		if err != nil {
			return result, err
		}
		if info.Private {
			return result, goerr.Wrap(types.ErrPrivateRepo,
				"repository "+ref.String()+" is not public",
				goerr.V("repo", ref.String()))
		}
	}

	result.Accepted = true
	return result, nil
}

// fetchMarkdownContent lists the files changed by the pull request, fetches
// every markdown file that was not removed, and concatenates their contents
// lower-cased
func (uc *UseCase) fetchMarkdownContent(ctx context.Context, payload *model.Payload) (string, error) {
	files, err := uc.forge.ListChangedFiles(ctx, payload.Owner(), payload.RepoName(), payload.Number())
	if err != nil {
		return "", err
	}

	var parts []string
	for _, f := range files {
		if f.Status == "removed" || !isMarkdown(f.Path) {
			continue
		}

		content, err := uc.forge.GetRawFileContent(ctx, payload.Owner(), payload.RepoName(), payload.HeadRef(), f.Path)
		if err != nil {
			return "", err
		}
		parts = append(parts, strings.ToLower(content))
	}

	if len(parts) == 0 {
		return "", goerr.Wrap(types.ErrNoContent, "no markdown files among the changed files",
			goerr.V("changed_files", len(files)))
	}

	return strings.Join(parts, contentSeparator), nil
}

func isMarkdown(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

func repoNames(refs []model.RepoReference) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	sort.Strings(names)
	return names
}
