package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/app/models/dto"
	"github.com/varunm/batchswap/internal/app/services"
	"github.com/varunm/batchswap/internal/middleware"
)

// AuthController handles identity callback, registration and session state
type AuthController struct {
	authService *services.AuthService
	cookieName  string
	cookieTTL   int
	secure      bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookieName string, cookieTTLSeconds int, secureCookies bool) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTLSeconds,
		secure:      secureCookies,
	}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, sessionID string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, sessionID, c.cookieTTL, "/", "", c.secure, true)
}

func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookieName, "", -1, "/", "", c.secure, true)
}

// Callback godoc
// @Summary Identity provider callback
// @Description Accepts an institutional email already verified by the external identity provider, establishes a session and reports whether registration is still required.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CallbackRequest true "Verified email"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Email is not an institutional address"
// @Router /auth/callback [post]
func (c *AuthController) Callback(ctx *gin.Context) {
	var req dto.CallbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A valid email is required").WithField("email")))
		return
	}

	result, err := c.authService.ResolveIdentity(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, result.SessionID)

	if result.Student == nil {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
			Status:    "registration_required",
			Message:   "Please complete your registration",
			Email:     result.Identity.Email,
			FirstName: result.Identity.FirstName,
			LastName:  result.Identity.LastName,
		}))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		Status:  "success",
		Message: "Logged in",
		Student: result.Student,
	}))
}

// Register godoc
// @Summary Complete registration
// @Description Creates the student profile for a session whose email has no profile yet.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Profile data"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid CGPA or batch"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "No session or registration not initiated"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	sessionID, _, ok := middleware.SessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "CGPA and current batch are required")))
		return
	}

	student, err := c.authService.CompleteRegistration(ctx.Request.Context(), sessionID, *req.CGPA, req.CurrentBatch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// Me godoc
// @Summary Current student profile
// @Description Returns the profile bound to the session.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	student, ok := middleware.StudentFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Registration required")))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// Check godoc
// @Summary Session state
// @Description Reports whether the caller holds a valid session and whether registration is still pending. Never fails with 401.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AuthCheckResponse}
// @Router /auth/check [get]
func (c *AuthController) Check(ctx *gin.Context) {
	sessionID, err := ctx.Cookie(c.cookieName)
	if err != nil || sessionID == "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthCheckResponse{}))
		return
	}

	data, _, err := c.authService.ResolveSession(ctx.Request.Context(), sessionID)
	if err != nil {
		c.clearSessionCookie(ctx)
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthCheckResponse{}))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthCheckResponse{
		Authenticated:     true,
		NeedsRegistration: data.NeedsRegistration,
		Email:             data.Email,
	}))
}

// Logout godoc
// @Summary Log out
// @Description Clears the session on the server and expires the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie(c.cookieName); err == nil && sessionID != "" {
		if err := c.authService.Logout(ctx.Request.Context(), sessionID); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	c.clearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Status:  "success",
		Message: "Logged out",
	}))
}
