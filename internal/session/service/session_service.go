package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/platform/config"
	"github.com/ridloal/storefront-demo/internal/platform/delay"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
	"github.com/ridloal/storefront-demo/internal/session/domain"
	"github.com/ridloal/storefront-demo/internal/session/repository"
)

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrNoActiveSession    = errors.New("no active session")
	ErrInvalidToken       = errors.New("invalid or expired session token")
)

// Latensi buatan untuk panggilan auth mock, meniru round-trip backend.
const authDelay = 1000 * time.Millisecond

var jwtSecretKey []byte

func init() {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Println("Warning: JWT_SECRET_KEY not set, using default insecure key")
		secret = "storefront-demo-insecure-key" // fallback
	}
	jwtSecretKey = []byte(secret)
}

type SessionService interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Logout(ctx context.Context) error
	SwitchToGuest(ctx context.Context) (*domain.AuthResponse, error)
	Current(ctx context.Context) (*domain.UserSession, error)
}

type sessionServiceImpl struct {
	repo    repository.SessionRepository
	mockCfg config.MockConfig
}

func NewSessionService(repo repository.SessionRepository, mockCfg config.MockConfig) SessionService {
	return &sessionServiceImpl{repo: repo, mockCfg: mockCfg}
}

// Login adalah autentikasi mock: selalu berhasil selama email dan password
// tidak kosong. Tidak ada account store untuk divalidasi.
func (s *sessionServiceImpl) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := delay.Simulate(ctx, authDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	role := catalogDomain.RoleCustomer
	if req.Role != "" {
		parsed, ok := catalogDomain.ParseRole(req.Role)
		if !ok || parsed == catalogDomain.RoleGuest {
			return nil, fmt.Errorf("unsupported login role: %s", req.Role)
		}
		role = parsed
	}

	// Plaintext password tidak boleh bertahan, meskipun mock tidak memverifikasinya.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Login: failed to hash password", err)
		return nil, fmt.Errorf("could not process login: %w", err)
	}

	session := &domain.UserSession{
		ID:            uuid.NewString(),
		Email:         req.Email,
		FirstName:     "John",
		LastName:      "Doe",
		Role:          role,
		Authenticated: true,
		PasswordHash:  string(hashedPassword),
	}

	return s.establish(ctx, session)
}

// Register mock: selalu berhasil, tanpa cek keunikan karena tidak ada account store.
func (s *sessionServiceImpl) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	if err := delay.Simulate(ctx, authDelay, s.mockCfg.LatencyPercent); err != nil {
		return nil, err
	}

	role, ok := catalogDomain.ParseRole(req.Role)
	if !ok || role == catalogDomain.RoleGuest {
		return nil, fmt.Errorf("unsupported registration role: %s", req.Role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", err)
		return nil, fmt.Errorf("could not process registration: %w", err)
	}

	session := &domain.UserSession{
		ID:            uuid.NewString(),
		Email:         strings.TrimSpace(strings.ToLower(req.Email)),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Role:          role,
		Authenticated: true,
		PasswordHash:  string(hashedPassword),
	}

	return s.establish(ctx, session)
}

func (s *sessionServiceImpl) Logout(ctx context.Context) error {
	if err := s.repo.DeleteSession(ctx); err != nil {
		logger.Error("Logout: failed to delete persisted session", err)
		return err
	}
	return nil
}

// SwitchToGuest mengeset session guest tidak ter-autentikasi dan mempersistnya,
// supaya pilihan guest bertahan melewati restart aplikasi.
func (s *sessionServiceImpl) SwitchToGuest(ctx context.Context) (*domain.AuthResponse, error) {
	session := &domain.UserSession{
		ID:            "guest",
		Email:         "",
		FirstName:     "Guest",
		LastName:      "User",
		Role:          catalogDomain.RoleGuest,
		Authenticated: false,
	}
	return s.establish(ctx, session)
}

func (s *sessionServiceImpl) Current(ctx context.Context) (*domain.UserSession, error) {
	session, err := s.repo.GetSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}
	return session, nil
}

// establish mempersist session sebagai satu-satunya session aktif dan
// menerbitkan token untuk dipakai client di request berikutnya.
func (s *sessionServiceImpl) establish(ctx context.Context, session *domain.UserSession) (*domain.AuthResponse, error) {
	if err := s.repo.SaveSession(ctx, session); err != nil {
		logger.Error("establish: failed to persist session", err)
		return nil, fmt.Errorf("could not save session: %w", err)
	}

	token, err := IssueSessionToken(session)
	if err != nil {
		logger.Error("establish: failed to sign token", err)
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &domain.AuthResponse{Session: *session, Token: token}, nil
}

// IssueSessionToken menandatangani JWT HS256 yang membawa identitas session.
func IssueSessionToken(session *domain.UserSession) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.ID,
		"role":       string(session.Role),
		"exp":        time.Now().Add(time.Hour * 72).Unix(), // Token berlaku 72 jam
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// ParseSessionToken memverifikasi token dan mengembalikan session ID di dalamnya.
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidToken
	}
	return sessionID, nil
}
