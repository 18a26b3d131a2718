package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// SessionClaims defines the claims carried by an admin session cookie
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type SessionManager interface {
	VerifyCredentials(email, password string) error
	GenerateSessionToken(email string) (string, error)
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}

type sessionManager struct {
	secret       []byte
	adminEmail   string
	passwordHash string
	expiry       time.Duration
}

func NewSessionManager(secret, adminEmail, passwordHash string, expiry time.Duration) SessionManager {
	return &sessionManager{
		secret:       []byte(secret),
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		expiry:       expiry,
	}
}

// VerifyCredentials checks a login attempt against the configured admin
// account. The password is compared against the bcrypt hash from config.
func (m *sessionManager) VerifyCredentials(email, password string) error {
	if email != m.adminEmail {
		// Run the comparison anyway so the reject path costs the same.
		bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (m *sessionManager) GenerateSessionToken(email string) (string, error) {
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "digishield-admin",
			Audience:  jwt.ClaimStrings{"admin-dashboard"},
			ID:        generateJTI(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *sessionManager) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Simple unique ID generator
func generateJTI() string {
	return strconv.FormatInt(time.Now().UnixNano(), 16)
}
