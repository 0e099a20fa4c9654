package v1

import (
	"errors"
	"net/http"
	"time"

	"go-internship-backend/internal/delivery/http/middleware"
	"go-internship-backend/internal/delivery/http/response"
	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/apperror"
	"go-internship-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAuthHandler(public *gin.RouterGroup, authLimited *gin.RouterGroup, authUC domain.AuthUsecase, sessionTTL time.Duration, cookieSecure bool) {
	handler := &AuthHandler{
		authUC:       authUC,
		sessionTTL:   sessionTTL,
		cookieSecure: cookieSecure,
	}

	public.GET("/", handler.Index)
	public.GET("/logout", handler.Logout)
	public.GET("/api/user-status", handler.Status)

	authLimited.POST("/register", handler.Register)
	authLimited.POST("/login", handler.Login)
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
}

// Index godoc
// @Summary      Landing page
// @Description  Redirects signed-in users to their profile, otherwise describes the service
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Success      302
// @Router       / [get]
func (h *AuthHandler) Index(c *gin.Context) {
	if middleware.CurrentSession(c) != nil {
		c.Redirect(http.StatusFound, "/profile")
		return
	}
	response.Success(c, http.StatusOK, "Find internships that match your profile", nil)
}

// Register godoc
// @Summary      User Registration
// @Description  Create an account and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Email and password are required"))
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.setSessionCookie(c, result.Token)
	security.DefaultLogger().LogRegistered(c.Request.Context(), result.User.Email, c.ClientIP(), c.GetString(string(domain.KeyRequestID)))

	response.SuccessWithRedirect(c, http.StatusOK, "Registration successful", "/profile", gin.H{
		"email": result.User.Email,
		"name":  result.DisplayName,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Verify credentials and start a session. Redirects to the dashboard once a profile exists.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperror.BadRequest("Email and password are required"))
		return
	}

	ctx := c.Request.Context()
	reqID := c.GetString(string(domain.KeyRequestID))

	result, err := h.authUC.Login(ctx, domain.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			security.DefaultLogger().LogLoginFailed(ctx, req.Email, c.ClientIP(), c.GetHeader("User-Agent"), reqID, "invalid_credentials")
		}
		_ = c.Error(err)
		return
	}

	h.setSessionCookie(c, result.Token)
	security.DefaultLogger().LogLoginSuccess(ctx, result.User.Email, c.ClientIP(), reqID)

	redirect := "/profile"
	if result.HasProfile {
		redirect = "/dashboard"
	}
	response.SuccessWithRedirect(c, http.StatusOK, "Login successful", redirect, nil)
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the session cookie and return to the landing page
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if s := middleware.CurrentSession(c); s != nil {
		security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
			Event:        security.EventLogout,
			SubjectType:  "email",
			SubjectValue: security.HashValue(s.Email),
			IP:           c.ClientIP(),
			RequestID:    c.GetString(string(domain.KeyRequestID)),
		})
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// Status godoc
// @Summary      Session status
// @Description  Report whether the caller is signed in and has a profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SessionStatus
// @Router       /api/user-status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	status, err := h.authUC.Status(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, status)
}
