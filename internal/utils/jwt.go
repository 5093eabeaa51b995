package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"boutique_back_end/internal/models"
)

const TokenTTL = 24 * time.Hour

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Claims du jeton remis à la connexion
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func RoleFor(username string) string {
	if models.IsAdmin(username) {
		return RoleAdmin
	}
	return RoleCustomer
}

// GenerateJWT signe un jeton HS256 pour l'utilisateur
func GenerateJWT(secret []byte, username string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("JWT_SECRET manquant")
	}
	now := time.Now()
	claims := Claims{
		Role: RoleFor(username),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseJWT valide la signature et l'expiration du jeton
func ParseJWT(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("jeton invalide")
	}
	return claims, nil
}
