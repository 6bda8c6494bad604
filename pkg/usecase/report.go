package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dd2482/submitcheck/pkg/domain/model"
	"github.com/dd2482/submitcheck/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Report posts the verdict back to the originating repository: labels, a
// comment carrying the audit trail, and a commit status linking to the
// comment. The credential is checked once, before any remote call. The three
// writes are independent and best-effort: a failure in one does not prevent
// the next, but every failure is aggregated and returned after all three
// were attempted.
func (uc *UseCase) Report(ctx context.Context, payload *model.Payload, result *model.ValidationResult, message string) error {
	logger := ctxlog.From(ctx)

	if !uc.forge.Authenticated() {
		return goerr.Wrap(types.ErrMissingCredential, "cannot report verdict without a credential")
	}

	labels := []string{uc.baseLabel}
	if result.Accepted {
		labels = append(labels, string(result.Stage))
	}

	body := message
	if result.Accepted {
		body = types.SuccessComment
	}
	body += auditTrailer(result)

	owner, repo := payload.Owner(), payload.RepoName()
	var errs []error

	if err := uc.forge.SetLabels(ctx, owner, repo, payload.Number(), labels); err != nil {
		logger.Error("failed to set labels", "error", err, "labels", labels)
		errs = append(errs, err)
	} else {
		logger.Info("set labels", "labels", labels)
	}

	commentURL, err := uc.forge.PostComment(ctx, owner, repo, payload.Number(), body)
	if err != nil {
		logger.Error("failed to post comment", "error", err)
		errs = append(errs, err)
	} else {
		logger.Info("posted comment", "url", commentURL)
	}

	status := model.CommitStatus{
		State:       model.StatusFailure,
		Description: types.StatusDescriptionFailure,
		TargetURL:   commentURL,
	}
	if result.Accepted {
		status.State = model.StatusSuccess
		status.Description = types.StatusDescriptionSuccess
	}

	if err := uc.forge.SetCommitStatus(ctx, owner, repo, payload.HeadSHA(), status); err != nil {
		logger.Error("failed to set commit status", "error", err, "state", status.State)
		errs = append(errs, err)
	} else {
		logger.Info("set commit status", "state", status.State)
	}

	return errors.Join(errs...)
}

// auditTrailer renders the deterministic findings summary appended to every
// posted comment, so authors can self-diagnose even on rejection
func auditTrailer(result *model.ValidationResult) string {
	var b strings.Builder
	b.WriteString("\n\n---\n")
	b.WriteString("stage: " + string(result.Stage) + "\n")

	effective := "unknown"
	if !result.CreatedAt.IsZero() {
		effective = result.CreatedAt.UTC().Format(time.RFC3339)
	}
	b.WriteString("effective created at: " + effective + "\n")

	repos := "none"
	if len(result.Repos) > 0 {
		repos = strings.Join(result.Repos, ", ")
	}
	b.WriteString("repositories: " + repos + "\n")

	return b.String()
}
