package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/response"
	"github.com/linskybing/gigboard/pkg/utils"
)

type UserHandler struct {
	svc   *application.UserService
	audit repository.AuditRepo
}

func NewUserHandler(svc *application.UserService, auditRepo repository.AuditRepo) *UserHandler {
	return &UserHandler{svc: svc, audit: auditRepo}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} user.User "Registered user"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBind(&input); err != nil {
		writeBindError(c, err)
		return
	}

	usr, err := h.svc.RegisterUser(input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, h.audit, utils.AuditEvent{
		UserID:       usr.ID,
		Action:       audit.ActionRegister,
		ResourceType: audit.ResourceUser,
		ResourceID:   usr.Username,
		After:        usr,
		Description:  "registered as " + string(usr.Role),
	})
	c.JSON(http.StatusCreated, usr)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Failure 500 {object} response.ErrorResponse "Failed to generate token"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginInput
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}

	usr, token, err := h.svc.LoginUser(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		config.TokenTTLHours*3600,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	utils.LogAuditWithConsole(c, h.audit, utils.AuditEvent{
		UserID:       usr.ID,
		Action:       audit.ActionLogin,
		ResourceType: audit.ResourceUser,
		ResourceID:   usr.Username,
	})
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.ID,
		Username: usr.Username,
		Role:     string(usr.Role),
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		"token",
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// AuthStatus godoc
// @Summary Check whether the caller's token is still valid
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse "token expired"
// @Router /auth/status [get]
func (h *UserHandler) AuthStatus(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "valid", "user_id": claims.UserID, "role": claims.Role})
}

// GetMe godoc
// @Summary Current user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	usr, err := h.svc.GetProfile(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// CompleteOnboarding godoc
// @Summary Fill in the profile after signup
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.OnboardingInput true "Profile"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /me/onboarding [put]
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var input user.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	usr, err := h.svc.CompleteOnboarding(uid, input)
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, h.audit, utils.AuditEvent{
		Action:       audit.ActionOnboarding,
		ResourceType: audit.ResourceUser,
		ResourceID:   usr.Username,
		After:        usr,
		Description:  "completed onboarding",
	})
	c.JSON(http.StatusOK, usr)
}

// UploadAvatar godoc
// @Summary Upload a profile picture or company logo
// @Tags users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid file"
// @Failure 412 {object} response.ErrorResponse "Uploads unavailable"
// @Router /me/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxAvatarBytes+(1<<20))
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, apperr.Validation("file is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, apperr.Validation("cannot read uploaded file"))
		return
	}
	defer f.Close()

	usr, err := h.svc.SetAvatar(c.Request.Context(), uid, application.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, h.audit, utils.AuditEvent{
		Action:       audit.ActionAvatar,
		ResourceType: audit.ResourceUser,
		ResourceID:   usr.Username,
		After:        usr.AvatarURL,
		Description:  "uploaded avatar",
	})
	c.JSON(http.StatusOK, usr)
}
