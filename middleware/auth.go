package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

const (
	// ContextUserIDKey is the key used to store authenticated user ID in Gin context.
	ContextUserIDKey = "user_id"
	// ContextUsernameKey stores the username inside Gin context.
	ContextUsernameKey = "username"
	// ContextTokenKey stores the raw bearer token inside Gin context.
	ContextTokenKey = "token"
	// ContextClaimsKey stores the parsed claims inside Gin context.
	ContextClaimsKey = "claims"
)

// Authenticator validates bearer tokens against the signer and the revocation list.
type Authenticator struct {
	jwt       *utils.JWTManager
	blacklist *utils.TokenBlacklist
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(jwt *utils.JWTManager, blacklist *utils.TokenBlacklist) *Authenticator {
	return &Authenticator{jwt: jwt, blacklist: blacklist}
}

// Required ensures the request is authenticated via JWT.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40101, "authorization header missing")
			ctx.Abort()
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			utils.Error(ctx, http.StatusUnauthorized, 40102, "invalid authorization header format")
			ctx.Abort()
			return
		}
		if tokenString == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40103, "empty bearer token")
			ctx.Abort()
			return
		}

		if a.blacklist.Contains(ctx.Request.Context(), tokenString) {
			utils.Error(ctx, http.StatusUnauthorized, 40104, "token revoked")
			ctx.Abort()
			return
		}

		claims, err := a.jwt.ParseToken(tokenString)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
			ctx.Abort()
			return
		}

		setIdentity(ctx, tokenString, claims)
		ctx.Next()
	}
}

// Optional attaches the caller identity when a valid token is present and never rejects.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx.GetHeader("Authorization"))
		if ok && tokenString != "" && !a.blacklist.Contains(ctx.Request.Context(), tokenString) {
			if claims, err := a.jwt.ParseToken(tokenString); err == nil {
				setIdentity(ctx, tokenString, claims)
			}
		}
		ctx.Next()
	}
}

// AdminRequired rejects callers whose account is not an active admin. It must run after Required.
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uid, ok := UserID(ctx)
		if !ok {
			utils.Error(ctx, http.StatusUnauthorized, 40106, "unauthorized")
			ctx.Abort()
			return
		}
		if !IsAdmin(ctx, db, uid) {
			utils.Error(ctx, http.StatusForbidden, 40301, "admin role required")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// IsAdmin reports whether uid is an active admin account.
func IsAdmin(ctx *gin.Context, db *gorm.DB, uid uint) bool {
	var user models.User
	if err := db.WithContext(ctx.Request.Context()).Select("id", "role", "active").First(&user, uid).Error; err != nil {
		return false
	}
	return user.Active && user.IsAdmin()
}

// UserID returns the authenticated user id, if any.
func UserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok && id != 0
}

// Claims returns the parsed token claims and the raw token, if any.
func Claims(ctx *gin.Context) (*utils.Claims, string, bool) {
	value, exists := ctx.Get(ContextClaimsKey)
	if !exists {
		return nil, "", false
	}
	claims, ok := value.(*utils.Claims)
	return claims, ctx.GetString(ContextTokenKey), ok
}

func setIdentity(ctx *gin.Context, token string, claims *utils.Claims) {
	ctx.Set(ContextUserIDKey, claims.UserID)
	ctx.Set(ContextUsernameKey, claims.Username)
	ctx.Set(ContextTokenKey, token)
	ctx.Set(ContextClaimsKey, claims)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
