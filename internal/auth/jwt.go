package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmdirect/farmdirect-golang/internal/models"
)

// ErrInvalidToken covers bad signatures, wrong algorithms and malformed
// payloads alike. Callers treat all of them the same: the request proceeds
// anonymously.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated actor derived from a verified token.
// A nil *Identity means anonymous.
type Identity struct {
	ID    primitive.ObjectID
	Email string
	Role  models.Role
}

// TokenManager signs and verifies identity tokens. It is constructed once in
// main with the JWT_SECRET value and injected wherever tokens are handled.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate creates a signed token carrying the user's id, email and role.
// Tokens deliberately carry no expiry claim; existing clients hold sessions
// open indefinitely and adding one would change that behavior.
func (m *TokenManager) Generate(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"role":  string(user.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a token string and returns the identity it encodes.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but our HMAC scheme.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idHex, _ := claims["id"].(string)
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Identity{ID: id, Email: email, Role: models.Role(role)}, nil
}
