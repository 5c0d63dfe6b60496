package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/platform/config"
	"github.com/ridloal/storefront-demo/internal/session/domain"
	"github.com/ridloal/storefront-demo/internal/session/repository"
	"github.com/ridloal/storefront-demo/internal/session/repository/mocks"
)

// Latensi mock dimatikan supaya test tidak menunggu delay buatan.
var noDelay = config.MockConfig{LatencyPercent: 0}

func TestSessionService_Login(t *testing.T) {
	ctx := context.TODO()

	t.Run("Successful login creates authenticated customer session", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("*domain.UserSession")).Return(nil).Once()

		resp, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "pw"})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.True(t, resp.Session.Authenticated)
		assert.Equal(t, catalogDomain.RoleCustomer, resp.Session.Role)
		assert.Equal(t, "a@b.com", resp.Session.Email)
		assert.Equal(t, "John", resp.Session.FirstName)
		assert.Equal(t, "Doe", resp.Session.LastName)
		assert.NotEmpty(t, resp.Session.ID)
		assert.NotEmpty(t, resp.Token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Distributor login keeps the requested role", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("*domain.UserSession")).Return(nil).Once()

		resp, err := svc.Login(ctx, domain.LoginRequest{Email: "d@b.com", Password: "pw", Role: "distributor"})

		assert.NoError(t, err)
		assert.Equal(t, catalogDomain.RoleDistributor, resp.Session.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty email fails with invalid credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		resp, err := svc.Login(ctx, domain.LoginRequest{Email: "", Password: "x"})

		assert.Nil(t, resp)
		assert.EqualError(t, err, ErrInvalidCredentials.Error())
		mockRepo.AssertNotCalled(t, "SaveSession")
	})

	t.Run("Empty password fails with invalid credentials", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		resp, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: ""})

		assert.Nil(t, resp)
		assert.EqualError(t, err, ErrInvalidCredentials.Error())
	})

	t.Run("Guest is not a valid login role", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		resp, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "pw", Role: "guest"})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})

	t.Run("Repository failure wraps into save error", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("*domain.UserSession")).Return(errors.New("disk full")).Once()

		resp, err := svc.Login(ctx, domain.LoginRequest{Email: "a@b.com", Password: "pw"})

		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "could not save session")
		mockRepo.AssertExpectations(t)
	})
}

func TestSessionService_Register(t *testing.T) {
	ctx := context.TODO()

	t.Run("Registration always succeeds with the supplied fields", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("*domain.UserSession")).Return(nil).Once()

		resp, err := svc.Register(ctx, domain.RegisterRequest{
			Email:     "New@Example.com",
			Password:  "password123",
			FirstName: "Ana",
			LastName:  "Putri",
			Role:      "distributor",
		})

		assert.NoError(t, err)
		assert.True(t, resp.Session.Authenticated)
		assert.Equal(t, "new@example.com", resp.Session.Email)
		assert.Equal(t, "Ana", resp.Session.FirstName)
		assert.Equal(t, catalogDomain.RoleDistributor, resp.Session.Role)
		assert.NotEmpty(t, resp.Token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Password hash never reaches the serialized session", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		var saved *domain.UserSession
		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("*domain.UserSession")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.UserSession)
			}).Return(nil).Once()

		_, err := svc.Register(ctx, domain.RegisterRequest{
			Email: "a@b.com", Password: "password123",
			FirstName: "A", LastName: "B", Role: "customer",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, saved.PasswordHash)
		assert.NotEqual(t, "password123", saved.PasswordHash) // plaintext dibuang
	})
}

func TestSessionService_LogoutAndGuest(t *testing.T) {
	ctx := context.TODO()

	t.Run("Logout removes the persisted session", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("DeleteSession", ctx).Return(nil).Once()

		assert.NoError(t, svc.Logout(ctx))
		mockRepo.AssertExpectations(t)
	})

	t.Run("SwitchToGuest persists an unauthenticated guest session", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("SaveSession", ctx, mock.AnythingOfType("*domain.UserSession")).Return(nil).Once()

		resp, err := svc.SwitchToGuest(ctx)

		assert.NoError(t, err)
		assert.False(t, resp.Session.Authenticated)
		assert.Equal(t, catalogDomain.RoleGuest, resp.Session.Role)
		assert.Equal(t, "guest", resp.Session.ID)
		assert.NotEmpty(t, resp.Token)
		mockRepo.AssertExpectations(t)
	})
}

func TestSessionService_Current(t *testing.T) {
	ctx := context.TODO()

	t.Run("Returns persisted session", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		stored := &domain.UserSession{ID: "sess-1", Role: catalogDomain.RoleCustomer, Authenticated: true}
		mockRepo.On("GetSession", ctx).Return(stored, nil).Once()

		session, err := svc.Current(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "sess-1", session.ID)
	})

	t.Run("No persisted session maps to ErrNoActiveSession", func(t *testing.T) {
		mockRepo := new(mocks.MockSessionRepository)
		svc := NewSessionService(mockRepo, noDelay)

		mockRepo.On("GetSession", ctx).Return(nil, repository.ErrSessionNotFound).Once()

		session, err := svc.Current(ctx)

		assert.Nil(t, session)
		assert.EqualError(t, err, ErrNoActiveSession.Error())
	})
}

func TestSessionTokens(t *testing.T) {
	t.Run("Issued token parses back to the session ID", func(t *testing.T) {
		session := &domain.UserSession{ID: "sess-42", Role: catalogDomain.RoleCustomer}

		token, err := IssueSessionToken(session)
		assert.NoError(t, err)

		sessionID, err := ParseSessionToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "sess-42", sessionID)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		_, err := ParseSessionToken("not-a-token")
		assert.EqualError(t, err, ErrInvalidToken.Error())
	})
}
