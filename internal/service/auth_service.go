package service

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tribalbridge/backend/internal/logger"
	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/repository"
)

// keyJWTSecret is the settings key holding the hex-encoded HMAC
// signing secret. Generated on first use so tokens survive restarts.
const keyJWTSecret = "auth.jwt_secret"

const tokenTTL = 30 * 24 * time.Hour

// User is the public view of an account.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// AuthResponse is returned after successful login/register.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthService provides account registration and JWT authentication.
type AuthService interface {
	// Register creates a new account and returns a signed token.
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	// Login authenticates an account and returns a signed token.
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	// GetUser returns the public view of an account.
	GetUser(ctx context.Context, userID int64) (*User, error)
	// ParseToken validates a JWT and returns the account id it names.
	ParseToken(ctx context.Context, token string) (int64, error)
}

type authService struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, settings repository.SettingsRepository) AuthService {
	return &authService{users: users, settings: settings}
}

// Register creates a new account.
func (s *authService) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.generateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", "module", "auth", "action", "register", "resource", "user", "result", "ok", "username", username)

	return &AuthResponse{Token: token, User: publicUser(user)}, nil
}

// Login authenticates an account.
func (s *authService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Same error as a bad password so usernames cannot be probed.
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.generateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: publicUser(user)}, nil
}

// GetUser returns the public view of an account.
func (s *authService) GetUser(ctx context.Context, userID int64) (*User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return publicUser(user), nil
}

// ParseToken validates a JWT and returns the account id it names.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (int64, error) {
	secretBytes, err := s.signingSecret(ctx)
	if err != nil {
		return 0, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretBytes, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

// generateToken creates a new JWT token for the account.
func (s *authService) generateToken(ctx context.Context, userID int64) (string, error) {
	secretBytes, err := s.signingSecret(ctx)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secretBytes)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// signingSecret loads the HMAC secret, generating and persisting one
// on first use.
func (s *authService) signingSecret(ctx context.Context) ([]byte, error) {
	setting, err := s.settings.Get(ctx, keyJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("load jwt secret: %w", err)
	}
	if setting != nil && setting.Value != "" {
		return hex.DecodeString(setting.Value)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	if err := s.settings.Set(ctx, keyJWTSecret, hex.EncodeToString(secret)); err != nil {
		return nil, fmt.Errorf("save jwt secret: %w", err)
	}

	return secret, nil
}

func publicUser(u model.User) *User {
	return &User{
		ID:        strconv.FormatInt(u.ID, 10),
		Username:  u.Username,
		Email:     u.Email,
		AvatarURL: gravatarURL(u.Email),
	}
}

// gravatarURL generates a Gravatar URL for the given email.
func gravatarURL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=mp&s=80", hex.EncodeToString(hash[:]))
}
