// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/app/services"
	"github.com/2403A51L17/SESD-Project/internal/middleware"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
)

// AuthController handles registration, login, and logout
type AuthController struct {
	authService   services.AuthService
	cookieName    string
	sessionMaxAge int
	logger        zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookieName string, sessionMaxAge int, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:   authService,
		cookieName:    cookieName,
		sessionMaxAge: sessionMaxAge,
		logger:        logger,
	}
}

// ShowRegister godoc
// @Summary Registration form data
// @Description Returns the role options for the registration form
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /register [get]
func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data:    gin.H{"roles": []models.Role{models.RoleStudent, models.RoleMentor}},
	})
}

// Register godoc
// @Summary Register a new account
// @Description Creates a student or mentor account depending on the submitted role
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param role formData string true "student or mentor"
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 {object} dto.APIResponse "Redirects to /login"
// @Failure 400 {object} dto.APIResponse "Validation failure"
// @Failure 409 {object} dto.APIResponse "Duplicate username or email"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration payload")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:    dto.HandleValidationError(err),
			Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Registration failed: please check the submitted fields.")},
			Data:     gin.H{"form": req.Redacted()},
		})
		return
	}

	if err := c.authService.Register(ctx.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateAccount):
			ctx.JSON(http.StatusConflict, dto.APIResponse{
				Error:    dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Registration failed: duplicate username or email"),
				Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Registration failed: Username or Email already exists.")},
				Data:     gin.H{"form": req.Redacted()},
			})
		case errors.Is(err, apperrors.ErrInvalidRole), errors.Is(err, apperrors.ErrInvalidCredentials):
			ctx.JSON(http.StatusBadRequest, dto.APIResponse{
				Error:    dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
				Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Registration failed: please check the submitted fields.")},
				Data:     gin.H{"form": req.Redacted()},
			})
		default:
			c.logger.Error().Err(err).Str("email", req.Email).Msg("Registration failed")
			ctx.JSON(http.StatusInternalServerError, dto.APIResponse{
				Error:    dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Registration failed"),
				Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Database error. Please try again later.")},
				Data:     gin.H{"form": req.Redacted()},
			})
		}
		return
	}

	middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login",
		dto.NewFlash(dto.FlashSuccess, "Registration successful! Please log in."))
}

// ShowLogin godoc
// @Summary Login form data
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /login [get]
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true})
}

// Login godoc
// @Summary Log in
// @Description Verifies role + email + password and establishes the session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param role formData string true "student or mentor"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 {object} dto.APIResponse "Redirects to /profile"
// @Failure 401 {object} dto.APIResponse "Bad credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login payload")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:    dto.HandleValidationError(err),
			Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Login Failed. Check email, password, and role.")},
			Data:     gin.H{"form": req.Redacted()},
		})
		return
	}

	token, identity, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.APIResponse{
				Error:    dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Login Failed"),
				Messages: []dto.Flash{dto.NewFlash(dto.FlashDanger, "Login Failed. Check email, password, and role.")},
				Data:     gin.H{"form": req.Redacted()},
			})
			return
		}
		c.logger.Error().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(c.cookieName, token, c.sessionMaxAge, "/", "", false, true)

	ctx.Header("Location", "/profile")
	ctx.JSON(http.StatusSeeOther, dto.APIResponse{
		Success:  true,
		Data:     identity,
		Redirect: "/profile",
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 303 {object} dto.APIResponse "Redirects to /login"
// @Router /logout [get]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
	middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login",
		dto.NewFlash(dto.FlashSuccess, "You have been logged out."))
}
