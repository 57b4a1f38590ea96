package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/helioscast/helios/internal/db"
)

// The two principal kinds carry disjoint secrets and claim shapes; the
// "typ" claim is the discriminator so a token minted for one kind can
// never pass the other kind's middleware.
const (
	tokenTypeUser   = "user"
	tokenTypePlayer = "player"
)

// GenerateUserJWT signs a CMS-user token embedding the user id in "sub"
// and the customer id in "cid".
func GenerateUserJWT(userID, customerID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"cid": customerID,
		"typ": tokenTypeUser,
		"exp": time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// GeneratePlayerJWT signs a device token. Device tokens are long-lived;
// the device holds it from pairing until re-pairing.
func GeneratePlayerJWT(playerID, customerID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": playerID,
		"cid": customerID,
		"typ": tokenTypePlayer,
		"exp": time.Now().Add(365 * 24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// parseToken verifies the JWT against the secret and required type claim
// and returns the subject and customer ids.
func parseToken(tokenString, secret, wantType string) (int, int, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, errors.New("invalid claims")
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return 0, 0, errors.New("wrong token type")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, 0, errors.New("invalid sub claim")
	}
	cid, ok := claims["cid"].(float64)
	if !ok {
		return 0, 0, errors.New("invalid cid claim")
	}
	return int(sub), int(cid), nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// UserJWTMiddleware checks "Authorization: Bearer <token>", verifies it
// as a user token, loads the user, and sets "currentUser" in context.
func UserJWTMiddleware(secret string, store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid auth header"})
			return
		}

		userID, _, err := parseToken(raw, secret, tokenTypeUser)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := store.GetUserByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		c.Set("currentUser", user)
		c.Next()
	}
}

// PlayerJWTMiddleware is the device-side twin: verifies a player token
// and sets "currentPlayer" in context.
func PlayerJWTMiddleware(secret string, store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "missing or invalid auth header"})
			return
		}

		playerID, customerID, err := parseToken(raw, secret, tokenTypePlayer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "invalid token"})
			return
		}

		player, err := store.GetPlayerByID(playerID, customerID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "unknown device"})
			return
		}
		c.Set("currentPlayer", &player)
		c.Next()
	}
}
