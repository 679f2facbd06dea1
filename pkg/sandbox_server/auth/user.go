package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTypeBearer         = "bearer"
	DefaultExpireMinutes    = 15
	defaultSigningAlgorithm = jwa.HS256
)

type Config struct {
	DefaultUser      string `yaml:"default_user"`
	DefaultPassword  string `yaml:"default_password"`
	JWTSecret        string `yaml:"jwt_secret"`
	JWTExpireMinutes int    `yaml:"jwt_expire_minutes"`
}

type RawPassword string
type HashedPassword string

type User struct {
	Username string         `json:"username"`
	Disabled bool           `json:"disabled"`
	Password HashedPassword `json:"-"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthenticateUserRequest struct {
	Username string      `json:"username"`
	Password RawPassword `json:"password"`
}

type UserManager interface {
	Authenticate(ctx context.Context, ts int64, req AuthenticateUserRequest) (Token, error)
	TokenAuthorization(ctx context.Context, ts int64, token string) (User, error)
}

type _UserManager struct {
	users  map[string]User
	secret []byte
	expire time.Duration
}

// NewUserManager creates the manager with the configured default user as its
// only user.
func NewUserManager(cfg Config) (UserManager, error) {
	if cfg.DefaultUser == "" || cfg.DefaultPassword == "" {
		return nil, errors.New("default user and password are required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.JWTExpireMinutes <= 0 {
		cfg.JWTExpireMinutes = DefaultExpireMinutes
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}

	return &_UserManager{
		users: map[string]User{
			cfg.DefaultUser: {
				Username: cfg.DefaultUser,
				Password: HashedPassword(hashedPassword),
			},
		},
		secret: []byte(cfg.JWTSecret),
		expire: time.Duration(cfg.JWTExpireMinutes) * time.Minute,
	}, nil
}

func (m *_UserManager) Authenticate(ctx context.Context, ts int64, req AuthenticateUserRequest) (Token, error) {
	if err := ValidateAuthenticateUserRequest(req); err != nil {
		return Token{}, err
	}

	user, ok := m.users[req.Username]
	if !ok {
		logrus.Debugf("user %q not found", req.Username)
		return Token{}, model.ErrUserAuthenticationFail
	}
	if err := VerifyUserPassword(req.Password, user.Password); err != nil {
		return Token{}, err
	}
	if user.Disabled {
		return Token{}, model.ErrUserInactive
	}

	now := time.Unix(ts, 0)
	token, err := jwt.NewBuilder().
		Subject(user.Username).
		IssuedAt(now).
		Expiration(now.Add(m.expire)).
		Build()
	if err != nil {
		return Token{}, fmt.Errorf("build token: %w", err)
	}
	signed, err := jwt.Sign(token, jwt.WithKey(defaultSigningAlgorithm, m.secret))
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}

	return Token{AccessToken: string(signed), TokenType: TokenTypeBearer}, nil
}

func (m *_UserManager) TokenAuthorization(ctx context.Context, ts int64, token string) (User, error) {
	clock := jwt.ClockFunc(func() time.Time { return time.Unix(ts, 0) })
	parsed, err := jwt.Parse([]byte(token), jwt.WithKey(defaultSigningAlgorithm, m.secret), jwt.WithValidate(true), jwt.WithClock(clock))
	if errors.Is(err, jwt.ErrTokenExpired()) {
		return User{}, model.ErrUserTokenExpired
	}
	if err != nil {
		logrus.Debugf("invalid token: %v", err)
		return User{}, model.ErrUserTokenInvalid
	}

	user, ok := m.users[parsed.Subject()]
	if !ok {
		return User{}, model.ErrUserTokenInvalid
	}
	if user.Disabled {
		return User{}, model.ErrUserInactive
	}

	user.Password = ""
	return user, nil
}

func VerifyUserPassword(password RawPassword, hashedPassword HashedPassword) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return model.ErrUserAuthenticationFail
	}

	return err
}

func ValidateAuthenticateUserRequest(req AuthenticateUserRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}
