package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"go-shopbook/internal/shared/apperror"
	"go-shopbook/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextActorID      = "actor_id"
	ContextAllowedShops = "allowed_shops"

	// allShops in the "shops" claim grants access to every shop.
	allShops = "*"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware accepts an HS256 bearer token (or access_token cookie) whose
// "sub" claim names the caller and whose "shops" claim lists the shop ids the
// caller may use.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		actorID, err := claims.GetSubject()
		if err != nil || actorID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Subject not found in token", nil)
			c.Abort()
			return
		}

		c.Set(ContextActorID, actorID)
		c.Set(ContextAllowedShops, shopsClaim(claims))

		c.Next()
	}
}

func shopsClaim(claims jwt.MapClaims) []string {
	raw, ok := claims["shops"].([]interface{})
	if !ok {
		return nil
	}

	shops := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			shops = append(shops, s)
		}
	}
	return shops
}

// CanAccessShop reports whether the authenticated caller may use shopID.
func CanAccessShop(c *gin.Context, shopID string) bool {
	allowed := c.GetStringSlice(ContextAllowedShops)
	return slices.Contains(allowed, allShops) || slices.Contains(allowed, shopID)
}

// RequireShopAccess must run after AuthMiddleware. On routes without
// :shop_id only a caller allowed every shop passes.
func RequireShopAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		if slices.Contains(c.GetStringSlice(ContextAllowedShops), allShops) {
			c.Next()
			return
		}

		shopID := c.Param("shop_id")
		if shopID == "" || !CanAccessShop(c, shopID) {
			abortWith(c, apperror.ErrForbidden)
			return
		}

		c.Next()
	}
}
