package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"CampusPortal/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenTTL is the bearer token lifetime. Tokens stay valid for the full
	// window; there is no revocation list.
	TokenTTL = 30 * 24 * time.Hour

	// RecoveryTokenTTL bounds how long a password recovery token is usable.
	RecoveryTokenTTL = 15 * time.Minute
)

// Claims carries the user identifier inside the signed bearer token.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with the server-held secret.
type TokenService struct {
	secret []byte
}

func NewTokenService(cfg *config.AppConfig) *TokenService {
	return &TokenService{secret: []byte(cfg.JWTSecret)}
}

// Generate issues a signed token embedding the user id, expiring in 30 days.
func (s *TokenService) Generate(id primitive.ObjectID) (string, error) {
	claims := &Claims{
		ID: id.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the signature and expiry and returns the embedded user id.
func (s *TokenService) Parse(tokenString string) (primitive.ObjectID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, errors.New("invalid token")
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return primitive.NilObjectID, errors.New("invalid token subject")
	}
	return id, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashed), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NewRecoveryToken returns a single-use, unguessable token for the password
// recovery flow: 32 random bytes, hex encoded.
func NewRecoveryToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
