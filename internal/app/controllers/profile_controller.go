package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/app/services"
	"github.com/2403A51L17/SESD-Project/internal/middleware"
	"github.com/2403A51L17/SESD-Project/internal/pkg/auth"
)

// ProfileController handles the profile router and the role dashboards
type ProfileController struct {
	profileService services.ProfileService
	sessions       *auth.SessionService
	cookieName     string
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, sessions *auth.SessionService, cookieName string) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		sessions:       sessions,
		cookieName:     cookieName,
	}
}

// Home godoc
// @Summary Entry point
// @Description Sends authenticated callers to their profile and everyone else to login
// @Tags profile
// @Produce json
// @Success 303 {object} dto.APIResponse
// @Router / [get]
func (c *ProfileController) Home(ctx *gin.Context) {
	if token, err := ctx.Cookie(c.cookieName); err == nil && token != "" {
		if _, err := c.sessions.Validate(token); err == nil {
			middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/profile")
			return
		}
	}
	middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
}

// ProfileRouter godoc
// @Summary Role-based profile dispatch
// @Description Pure dispatch to the role-specific profile page
// @Tags profile
// @Produce json
// @Success 303 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /profile [get]
func (c *ProfileController) ProfileRouter(ctx *gin.Context) {
	_, _, role, ok := middleware.SessionIdentity(ctx)
	if !ok {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
		return
	}

	switch role {
	case models.RoleStudent:
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/student/profile")
	case models.RoleMentor:
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/mentor/profile")
	default:
		// An unrecognized role would loop between /profile and the role
		// pages; drop the session instead and start over at login.
		ctx.SetCookie(c.cookieName, "", -1, "/", "", false, true)
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
	}
}

// StudentProfile godoc
// @Summary Student dashboard
// @Description Returns the student's record and the shared material listing
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboard}
// @Failure 401 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /student/profile [get]
func (c *ProfileController) StudentProfile(ctx *gin.Context) {
	userID, _, _, ok := middleware.SessionIdentity(ctx)
	if !ok {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
		return
	}

	dashboard, err := c.profileService.StudentDashboard(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: dashboard})
}

// MentorProfile godoc
// @Summary Mentor dashboard
// @Description Returns the mentor's record; uploads happen via /upload_material
// @Tags profile
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MentorDashboard}
// @Failure 401 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Router /mentor/profile [get]
func (c *ProfileController) MentorProfile(ctx *gin.Context) {
	userID, _, _, ok := middleware.SessionIdentity(ctx)
	if !ok {
		middleware.RedirectWithFlash(ctx, http.StatusSeeOther, "/login")
		return
	}

	dashboard, err := c.profileService.MentorDashboard(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: dashboard})
}
