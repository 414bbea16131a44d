package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ndmitriev/authcore/internal/common"
	"github.com/ndmitriev/authcore/internal/server/auth"
	"github.com/ndmitriev/authcore/internal/server/config"
)

// verificationTokenBytes is the entropy of the email-verification token
// generated at registration. The token is stored for a future confirmation
// step and is never returned to the client.
const verificationTokenBytes = 32

// LoginResult bundles a signed session token with the authenticated user.
type LoginResult struct {
	Token string
	User  *User
}

// Service implements the credential flow: account registration and
// credential verification with session-token issuance.
type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account. All four fields are required. A duplicate
// email yields common.ErrorAlreadyExists whether it is caught by the
// existence pre-check or by the storage uniqueness constraint; the
// constraint is the authoritative signal under concurrency.
func (s *Service) Register(ctx context.Context, name, email, password, phoneNum string) (*User, error) {

	if name == "" || email == "" || password == "" || phoneNum == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking existing account: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	verificationToken, err := common.MakeRandHexString(verificationTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("error generating verification token: %w", err)
	}

	user := &User{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             email,
		PasswordHash:      passwordHash,
		PhoneNumber:       phoneNum,
		Role:              DefaultRole,
		VerificationToken: verificationToken,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed session
// token and the account. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, User: user}, nil
}

// GetUser returns the account with the given id.
func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, common.ErrorValidation
	}
	return s.repo.GetUserByID(ctx, id)
}
