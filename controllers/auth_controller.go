package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/middleware"
	"github.com/cppla/huxiang/services"
	"github.com/cppla/huxiang/utils"
	"github.com/cppla/huxiang/views"
)

// AuthController handles registration, login and profile endpoints.
type AuthController struct {
	users     *services.UserService
	jwt       *utils.JWTManager
	blacklist *utils.TokenBlacklist
}

// NewAuthController creates an AuthController.
func NewAuthController(users *services.UserService, jwt *utils.JWTManager, blacklist *utils.TokenBlacklist) *AuthController {
	return &AuthController{users: users, jwt: jwt, blacklist: blacklist}
}

// Register handles local account registration with bcrypt hashing.
func (a *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40001, err)
		return
	}

	user, err := a.users.Register(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}

	token, err := a.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}
	utils.Created(ctx, "registered", gin.H{
		"access_token": token,
		"user":         views.NewUserView(user),
	})
}

// Login verifies user credentials and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40002, err)
		return
	}
	if req.Identifier() == "" {
		utils.ValidationError(ctx, 40002, "validation failed", []utils.FieldError{{Field: "username", Rule: "required"}})
		return
	}

	user, err := a.users.Authenticate(ctx.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		fail(ctx, err)
		return
	}

	token, err := a.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"access_token": token,
		"user":         views.NewUserView(user),
	})
}

// Profile returns the current authenticated user's information.
func (a *AuthController) Profile(ctx *gin.Context) {
	uid, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "unauthorized")
		return
	}

	user, err := a.users.Get(ctx.Request.Context(), uid)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewUserView(user))
}

// UpdateProfile allows the authenticated user to update bio, avatar and username.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	uid, ok := middleware.UserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "unauthorized")
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindFailed(ctx, 40003, err)
		return
	}

	user, err := a.users.UpdateProfile(ctx.Request.Context(), uid, req)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Success(ctx, views.NewUserView(user))
}

// Logout invalidates the token by blacklisting it until expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	claims, token, ok := middleware.Claims(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "unauthorized")
		return
	}

	if err := a.blacklist.Add(ctx.Request.Context(), token, a.jwt.ExpiresAt(claims)); err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, 0, "logged out", nil)
}
