package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrUnauthorized = errors.New("unauthorized")

type LoginResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &service{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *service) LoginWithGoogle(ctx context.Context, code string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, ErrUnauthorized
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}

	u, err := s.upsertUser(info, token.RefreshToken)
	if err != nil {
		log.WithError(err).Error("Failed to upsert user")
		return nil, err
	}

	accessToken, err := auth.GenerateJWT(u.ID.String(), u.Role, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), u.Role, RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	log.WithField("user_id", u.ID).Info("User logged in")
	return &LoginResult{User: u, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *service) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, errors.New("userinfo response missing email")
	}
	return &info, nil
}

func (s *service) upsertUser(info *googleUserInfo, googleRefreshToken string) (*User, error) {
	u, err := s.repo.FindByEmail(info.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	encrypted := ""
	if googleRefreshToken != "" {
		if encrypted, err = config.Encrypt(googleRefreshToken); err != nil {
			return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	if errors.Is(err, ErrUserNotFound) {
		u = &User{
			Name:                  info.Name,
			Email:                 info.Email,
			AvatarURL:             info.Picture,
			Role:                  "user",
			EncryptedRefreshToken: encrypted,
		}
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
		return u, nil
	}

	u.Name = info.Name
	u.AvatarURL = info.Picture
	if encrypted != "" {
		u.EncryptedRefreshToken = encrypted
	}
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		return "", ErrUnauthorized
	}

	u, err := s.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", ErrUnauthorized
	}

	return auth.GenerateJWT(u.ID.String(), u.Role, AccessTokenTTL)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return s.repo.FindByID(uid)
}
