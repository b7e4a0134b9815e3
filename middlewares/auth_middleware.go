// middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/shindepushkar677-sys/Disaster-management-alert-system/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const SessionCookie = "token"

// identityFromRequest validates the session token (cookie first, then
// Bearer header) and returns the email it carries, provided that account
// still exists in the user store.
func identityFromRequest(c *gin.Context, users *storage.UserStore) (string, bool) {
	tokenString, err := c.Cookie(SessionCookie)
	if err != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false
		}
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return "", false
	}

	// Parse & validate HS256 only.
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", false
	}

	// The account may have disappeared from users.json since the token
	// was minted.
	if _, ok := users.FindByEmail(email); !ok {
		return "", false
	}
	return email, true
}

// AuthMiddleware gates the JSON mutation endpoints: unauthenticated
// requests get a 401 body.
func AuthMiddleware(users *storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := identityFromRequest(c, users)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Authentication required"})
			return
		}
		c.Set("email", email)
		c.Next()
	}
}

// PageAuthMiddleware gates the HTML routes: unauthenticated requests are
// redirected to the login page.
func PageAuthMiddleware(users *storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := identityFromRequest(c, users)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("email", email)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the email when a valid session is present
// and lets the request through either way.
func OptionalAuthMiddleware(users *storage.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if email, ok := identityFromRequest(c, users); ok {
			c.Set("email", email)
		}
		c.Next()
	}
}
