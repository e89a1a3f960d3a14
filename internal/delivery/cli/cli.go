// Package cli is the command-line delivery. Every command prints one JSON
// envelope on stdout: the data on success, the classified error otherwise.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	deliverycontext "snapgram/internal/delivery/context"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/errors"
	"snapgram/internal/query"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const defaultCommandTimeout = 30 * time.Second

// Params holds dependencies for the CLI, injected by Fx
type Params struct {
	fx.In

	Client *query.Client
	Logger *slog.Logger
}

type cli struct {
	client  *query.Client
	logger  *slog.Logger
	timeout time.Duration
	pretty  bool
}

// NewRootCommand builds the command tree
func NewRootCommand(params Params) *cobra.Command {
	c := &cli{
		client:  params.Client,
		logger:  params.Logger,
		timeout: defaultCommandTimeout,
	}

	root := &cobra.Command{
		Use:           "snapgram",
		Short:         "Snapgram client: accounts, posts, likes and saves",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", defaultCommandTimeout, "Per-command timeout")
	root.PersistentFlags().BoolVar(&c.pretty, "pretty", false, "Indent JSON output")

	root.AddCommand(
		c.newSignUpCmd(),
		c.newSignInCmd(),
		c.newSignOutCmd(),
		c.newWhoAmICmd(),
		c.newUserCmd(),
		c.newFeedCmd(),
		c.newPostCmd(),
		c.newLikeCmd(),
		c.newSaveCmd(),
		c.newUnsaveCmd(),
		c.newSavedCmd(),
	)

	return root
}

// run executes fn as one operation and prints its envelope. The error is
// returned after printing so the process exits non-zero.
func (c *cli) run(cmd *cobra.Command, name string, fn func(ctx context.Context) (any, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
	defer cancel()
	ctx = deliverycontext.WithOperation(ctx, c.logger, name)
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	meta := &domainerrors.MetaInfo{OperationID: deliverycontext.GetOperationID(ctx)}

	start := time.Now()
	data, err := fn(ctx)
	if err != nil {
		logger.Error("Command failed",
			slog.String("kind", string(domainerrors.KindOf(err))),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		if writeErr := c.write(cmd.OutOrStdout(), domainerrors.ErrorResponse{Error: errorInfo(err), Meta: meta}); writeErr != nil {
			return errors.Join(err, writeErr)
		}

		return err
	}

	logger.Debug("Command succeeded", slog.Duration("elapsed", time.Since(start)))

	return c.write(cmd.OutOrStdout(), domainerrors.SuccessResponse{Data: data, Meta: meta})
}

func (c *cli) write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if c.pretty {
		enc.SetIndent("", "  ")
	}

	return errors.Wrap(enc.Encode(v), "failed to write output")
}

// errorInfo lists every underlying failure when several were joined.
func errorInfo(err error) *domainerrors.ErrorInfo {
	info := domainerrors.NewErrorInfo(err)

	leaves := errors.Leaves(err)
	if len(leaves) > 1 {
		causes := make([]string, 0, len(leaves))
		for _, leaf := range leaves {
			causes = append(causes, leaf.Error())
		}
		info.Details = causes
	}

	return info
}
