// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "snapgram/internal/delivery/context"
	"snapgram/internal/domain/entity"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	"snapgram/internal/domain/service"
	"snapgram/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	accounts  gateway.AccountGateway
	documents gateway.DocumentGateway
	ids       service.IDGenerator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Accounts  gateway.AccountGateway
	Documents gateway.DocumentGateway
	IDs       service.IDGenerator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		accounts:  params.Accounts,
		documents: params.Documents,
		ids:       params.IDs,
		logger:    params.Logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount registers the account, derives the avatar and persists the profile document.
func (srv *userService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.UserProfile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating account", slog.String("email", input.Email))

	account, err := srv.accounts.CreateAccount(ctx, srv.ids.NewID(), input.Email, input.Password, input.Name)
	if err != nil {
		srv.log(ctx).Warn("Account creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, remoteFailure(err)
	}

	profile, err := srv.createProfile(ctx, account, input)
	if err != nil {
		// The account stays behind without a profile; it is not rolled back.
		srv.log(ctx).Warn("Account created without profile",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrAccountSetupIncomplete.WithDetails("account " + account.ID).WithCause(err)
	}

	srv.log(ctx).Debug("Account created", slog.String("account_id", account.ID), slog.String("user_id", profile.ID))

	return profile, nil
}

func (srv *userService) createProfile(ctx context.Context, account *entity.Account, input *usecase.CreateAccountInput) (*entity.UserProfile, error) {
	avatarURL, err := srv.accounts.InitialsAvatarURL(input.Name)
	if err != nil {
		return nil, err
	}

	profile := &entity.UserProfile{
		AccountID: account.ID,
		Name:      account.Name,
		Username:  input.Username,
		Email:     account.Email,
		ImageURL:  avatarURL,
	}
	if profile.Name == "" {
		profile.Name = input.Name
	}
	if profile.Email == "" {
		profile.Email = input.Email
	}

	doc, err := gateway.NewProfileDocument(profile)
	if err != nil {
		return nil, err
	}

	created, err := srv.documents.CreateDocument(ctx, gateway.CollectionUsers, srv.ids.NewID(), doc)
	if err != nil {
		return nil, err
	}

	profile.ID = created.ID
	profile.CreatedAt = created.CreatedAt

	return profile, nil
}

// GetCurrentUser resolves the active session's account to exactly one profile.
func (srv *userService) GetCurrentUser(ctx context.Context) (*entity.UserProfile, error) {
	account, err := srv.accounts.GetAccount(ctx)
	if err != nil {
		return nil, remoteFailure(err)
	}

	list, err := srv.documents.ListDocuments(ctx, gateway.CollectionUsers, gateway.Query{
		Filters: []gateway.Filter{gateway.Equal(gateway.AttrAccountID, account.ID)},
	})
	if err != nil {
		return nil, remoteFailure(err)
	}

	switch matches := max(list.Total, len(list.Documents)); {
	case len(list.Documents) == 0:
		return nil, domainerrors.ErrNotFound.WithDetails("no profile for account " + account.ID)
	case matches > 1:
		srv.log(ctx).Error("Multiple profiles share one account",
			slog.String("account_id", account.ID),
			slog.Int("profiles", matches),
		)

		return nil, domainerrors.ErrIntegrityViolation.WithDetails("account " + account.ID + " has multiple profiles")
	}

	profile, err := gateway.DecodeProfile(list.Documents[0])
	if err != nil {
		return nil, decodeFailure(err)
	}

	return profile, nil
}

// GetUserByID loads a profile by its document id.
func (srv *userService) GetUserByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user id is required")
	}

	doc, err := srv.documents.GetDocument(ctx, gateway.CollectionUsers, userID)
	if err != nil {
		return nil, lookupFailure(err)
	}

	profile, err := gateway.DecodeProfile(doc)
	if err != nil {
		return nil, decodeFailure(err)
	}

	return profile, nil
}
