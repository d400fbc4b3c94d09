package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"devhub/globals"
	"devhub/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// OptionalAuth attaches a *models.Viewer to the request context when a valid
// bearer token is present. Requests without one continue anonymously.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if header := r.Header.Get("Authorization"); header != "" {
			viewer, err := ViewerFromHeader(header)
			if err != nil {
				log.Printf("ignoring bearer token: %v", err)
			} else {
				r = r.WithContext(context.WithValue(r.Context(), globals.ViewerKey, viewer))
			}
		}
		next(w, r, ps)
	}
}

// ViewerFromHeader validates an "Authorization: Bearer <jwt>" value.
func ViewerFromHeader(header string) (*models.Viewer, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, fmt.Errorf("invalid token format")
	}
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}
	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("unauthorized: token has no user id")
	}
	return &models.Viewer{ID: claims.UserID, Username: claims.Username, Role: role}, nil
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("unauthorized: invalid token")
	}
	return claims, nil
}

// IssueToken signs a token for v. Used by tooling and tests.
func IssueToken(v models.Viewer, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username:         v.Username,
		UserID:           v.ID,
		Role:             string(v.Role),
		RegisteredClaims: claims,
	})
	return token.SignedString(globals.JwtSecret)
}
