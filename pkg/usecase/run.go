package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/dd2482/submitcheck/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// Run performs one full validation: the decision procedure followed by the
// verdict report. The report is attempted on rejection as well, carrying the
// rejection message, so the author always gets feedback. Any validation or
// report failure makes the run fail.
func (uc *UseCase) Run(ctx context.Context, deadline time.Time, payload *model.Payload) error {
	logger := ctxlog.From(ctx)

	result, vErr := uc.Validate(ctx, deadline, payload)

	var message string
	if vErr != nil {
		message = vErr.Error()
		logger.Error("validation failed", "error", vErr, "stage", result.Stage)
	} else {
		logger.Info("validation successful", "stage", result.Stage, "repos", result.Repos)
	}

	rErr := uc.Report(ctx, payload, result, message)
	if rErr != nil {
		logger.Error("failed to report verdict", "error", rErr)
	}

	return errors.Join(vErr, rErr)
}
