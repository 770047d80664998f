package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pressroom/internal/model"
)

// SessionTokenExpiry is the duration for which session tokens are valid.
// Sessions are deliberately not durable: restarting the backing session
// store logs everyone out, the durable collections are untouched.
const SessionTokenExpiry = 12 * time.Hour

// Claims represents the JWT claims of a newsroom session token.
type Claims struct {
	AccountID string     `json:"account_id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates session tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateSessionToken issues a signed token for the account. The token ID
// (JTI) is returned separately for registration in the session store.
func (s *JWTService) GenerateSessionToken(account model.Account) (tokenID string, token string, err error) {
	tokenID = uuid.New().String()
	claims := &Claims{
		AccountID: account.ID.String(),
		Email:     account.Email,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return tokenID, token, err
}

// ValidateToken validates a session token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
