package impl

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"snapgram/internal/domain/entity"
	domainerrors "snapgram/internal/domain/errors"
	"snapgram/internal/domain/gateway"
	mockGateway "snapgram/internal/mocks/gateway"
	"snapgram/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_SignIn_Success(t *testing.T) {
	accounts := mockGateway.NewMockAccountGateway(t)
	service := NewSessionService(SessionServiceParams{Accounts: accounts, Logger: newDiscardLogger()})
	ctx := context.Background()

	accounts.EXPECT().
		CreateSession(ctx, "ann@example.com", "pw").
		Return(&entity.Session{ID: "sess-1", AccountID: "acc-1"}, nil)

	session, err := service.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.ID)
	assert.Equal(t, "acc-1", session.AccountID)
}

func TestSessionService_SignIn_Failures(t *testing.T) {
	testCases := []struct {
		name     string
		cause    error
		expected *domainerrors.BaseError
	}{
		{name: "bad credentials", cause: remoteError(http.StatusUnauthorized), expected: domainerrors.ErrAuth},
		{name: "rate limited", cause: remoteError(http.StatusTooManyRequests), expected: domainerrors.ErrRemote},
		{name: "network", cause: gateway.NewNetworkError(errors.New("dial tcp: timeout")), expected: domainerrors.ErrRemote},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			accounts := mockGateway.NewMockAccountGateway(t)
			service := NewSessionService(SessionServiceParams{Accounts: accounts, Logger: newDiscardLogger()})
			ctx := context.Background()

			accounts.EXPECT().CreateSession(ctx, "ann@example.com", "wrong").Return(nil, tc.cause)

			session, err := service.SignIn(ctx, &usecase.SignInInput{Email: "ann@example.com", Password: "wrong"})

			assert.Nil(t, session)
			assert.ErrorIs(t, err, tc.expected)

			var remoteErr *gateway.RemoteError
			assert.ErrorAs(t, err, &remoteErr)
		})
	}
}

func TestSessionService_SignIn_InvalidInput(t *testing.T) {
	accounts := mockGateway.NewMockAccountGateway(t)
	service := NewSessionService(SessionServiceParams{Accounts: accounts, Logger: newDiscardLogger()})

	_, err := service.SignIn(context.Background(), &usecase.SignInInput{Email: "ann@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_SignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes current session", func(t *testing.T) {
		accounts := mockGateway.NewMockAccountGateway(t)
		service := NewSessionService(SessionServiceParams{Accounts: accounts, Logger: newDiscardLogger()})
		accounts.EXPECT().DeleteSession(ctx, gateway.CurrentSession).Return(nil)

		require.NoError(t, service.SignOut(ctx))
	})

	t.Run("no session", func(t *testing.T) {
		accounts := mockGateway.NewMockAccountGateway(t)
		service := NewSessionService(SessionServiceParams{Accounts: accounts, Logger: newDiscardLogger()})
		accounts.EXPECT().DeleteSession(ctx, gateway.CurrentSession).Return(remoteError(http.StatusUnauthorized))

		err := service.SignOut(ctx)

		assert.ErrorIs(t, err, domainerrors.ErrAuth)
	})
}
