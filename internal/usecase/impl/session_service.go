package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/entity"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	accounts gateway.AccountGateway
	logger   *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Accounts gateway.AccountGateway
	Logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		accounts: params.Accounts,
		logger:   params.Logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn opens an email/password session.
func (srv *sessionService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	session, err := srv.accounts.CreateSession(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, remoteFailure(err)
	}

	srv.log(ctx).Debug("Signed in", slog.String("account_id", session.AccountID))

	return session, nil
}

// SignOut deletes the current session.
func (srv *sessionService) SignOut(ctx context.Context) error {
	if err := srv.accounts.DeleteSession(ctx, gateway.CurrentSession); err != nil {
		srv.log(ctx).Warn("Sign out failed", slog.Any("error", err))

		return remoteFailure(err)
	}

	return nil
}
