package middleware

import (
	"fmt"
	"strings"

	"github.com/Govind-619/Storefront/services"
	"github.com/Govind-619/Storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const identityKey = "identity"

// AdminRole is the role claim value that grants administrator capability
const AdminRole = "admin"

// SetIdentity stores the resolved caller on the request context
func SetIdentity(c *gin.Context, id services.Identity) {
	c.Set(identityKey, id)
}

// CurrentIdentity returns the caller resolved by AuthMiddleware. The zero
// Identity is returned for anonymous requests.
func CurrentIdentity(c *gin.Context) services.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(services.Identity); ok {
			return id
		}
	}
	return services.Identity{}
}

// IdentityFromToken verifies an HS256 bearer token from the identity
// provider and reads the principal and role out of its claims.
func IdentityFromToken(tokenString, secret string) (services.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return services.Identity{}, err
	}
	if !token.Valid {
		return services.Identity{}, fmt.Errorf("token validation failed")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return services.Identity{}, fmt.Errorf("invalid token claims")
	}

	principal, _ := claims["sub"].(string)
	if principal == "" {
		principal, _ = claims["user_id"].(string)
	}
	if principal == "" {
		return services.Identity{}, fmt.Errorf("token has no subject")
	}
	role, _ := claims["role"].(string)
	return services.Identity{Principal: principal, IsAdmin: role == AdminRole}, nil
}

// AuthMiddleware resolves the caller from the Authorization header and
// rejects anonymous requests.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			utils.LogDebug("Missing or malformed Authorization header")
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		id, err := IdentityFromToken(tokenString, secret)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		SetIdentity(c, id)
		utils.LogDebug("Principal %s authenticated (admin=%t)", id.Principal, id.IsAdmin)
		c.Next()
	}
}

// AdminMiddleware only lets administrators through. It must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := CurrentIdentity(c)
		if !id.Authenticated() {
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}
		if !id.IsAdmin {
			utils.LogError("Non-admin principal attempted admin access: %s", id.Principal)
			utils.Forbidden(c, "Admin access only")
			c.Abort()
			return
		}
		c.Next()
	}
}
