// Package auth issues and verifies the bearer tokens, and attaches the
// acting principal to requests. Tokens carry only the principal id and the
// collection it lives in; roles are re-derived from storage on every request.
package auth

import (
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Claims struct {
	PrincipalModel entity.PrincipalModel `json:"model"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 tokens. It is constructed once at
// startup with the secret from config and is immutable afterwards.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

func (m *TokenManager) Issue(id bson.ObjectID, model entity.PrincipalModel) (string, error) {
	now := time.Now()
	claims := &Claims{
		PrincipalModel: model,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token and returns the principal id and model it names.
func (m *TokenManager) Verify(tokenString string) (bson.ObjectID, entity.PrincipalModel, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Authentication("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return bson.ObjectID{}, "", apperr.Wrap(apperr.KindAuthentication, err, "invalid or expired token")
	}
	if !token.Valid {
		return bson.ObjectID{}, "", apperr.Authentication("invalid token")
	}

	id, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return bson.ObjectID{}, "", apperr.Authentication("malformed token subject")
	}
	return id, claims.PrincipalModel, nil
}
