package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/dd2482/submitcheck/pkg/cli/config"
	"github.com/dd2482/submitcheck/pkg/domain/model"
	"github.com/dd2482/submitcheck/pkg/usecase"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var (
		courseCfg config.Course
		githubCfg config.GitHub
	)

	flags := append(courseCfg.Flags(), githubCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a submission pull request and report the verdict",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx).With(slog.String("run_id", uuid.NewString()))
			ctx = ctxlog.With(ctx, logger)

			if err := courseCfg.Load(); err != nil {
				return err
			}

			deadline, err := model.ParseTimestamp(courseCfg.Deadline)
			if err != nil {
				return goerr.Wrap(err, "invalid deadline", goerr.V("deadline", courseCfg.Deadline))
			}

			data, err := os.ReadFile(courseCfg.EventPath)
			if err != nil {
				return goerr.Wrap(err, "cannot find event payload", goerr.V("path", courseCfg.EventPath))
			}

			payload, err := model.ParsePayload(data)
			if err != nil {
				return err
			}

			forge, err := githubCfg.NewClient()
			if err != nil {
				return goerr.Wrap(err, "failed to create forge client")
			}

			logger.Info("Validating pull request",
				slog.String("repository", payload.Owner()+"/"+payload.RepoName()),
				slog.Int("number", payload.Number()),
				slog.Time("deadline", deadline),
			)

			opts := []usecase.Option{usecase.WithCourseOrg(courseCfg.Org)}
			if courseCfg.BaseLabel != "" {
				opts = append(opts, usecase.WithBaseLabel(courseCfg.BaseLabel))
			}

			uc := usecase.New(forge, opts...)
			return uc.Run(ctx, deadline, payload)
		},
	}
}
