package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/shift-scheduler/internal/audit"
	"github.com/BruksfildServices01/shift-scheduler/internal/config"
	"github.com/BruksfildServices01/shift-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
	"github.com/BruksfildServices01/shift-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shift-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/shift-scheduler/internal/middleware"
	"github.com/BruksfildServices01/shift-scheduler/internal/models"
	"github.com/BruksfildServices01/shift-scheduler/internal/store"
	"github.com/BruksfildServices01/shift-scheduler/internal/validators"
)

type AuthHandler struct {
	users  user.Repository
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(users user.Repository, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest takes either an email or a username.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, a valid email and a password of at least 6 characters are required.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.FullName)
	}
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Name is required.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if h.config.ValidateEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not appear to be valid.")
		return
	}

	role := models.RoleStaff
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			httperr.BadRequest(c, "invalid_role", "Role must be STAFF or MANAGER.")
			return
		}
		if parsed == models.RoleStaff || h.config.AllowManagerSignup {
			role = parsed
		}
	}

	var username *string
	if u := strings.TrimSpace(req.Username); u != "" {
		username = &u
	}

	ctx := c.Request.Context()

	if _, err := h.users.FindUserByEmail(ctx, email); err == nil {
		userExists(c)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		httperr.Respond(c, err)
		return
	}

	if username != nil {
		if _, err := h.users.FindUserByUsername(ctx, *username); err == nil {
			userExists(c)
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			httperr.Respond(c, err)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	u := models.User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := h.users.CreateUser(ctx, &u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			userExists(c)
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	httpresp.Created(c, dto.NewUserDTO(&u))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	identifier := strings.TrimSpace(req.Email)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Username)
	}
	if identifier == "" || req.Password == "" {
		httperr.BadRequest(c, "invalid_request", "Please provide email and password.")
		return
	}

	ctx := c.Request.Context()

	var (
		u   *models.User
		err error
	)
	if strings.Contains(identifier, "@") {
		u, err = h.users.FindUserByEmail(ctx, validators.NormalizeEmail(identifier))
	} else {
		u, err = h.users.FindUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			invalidCredentials(c)
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		invalidCredentials(c)
		return
	}

	token, err := middleware.IssueToken(h.config, u)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token": token,
		"user":  dto.NewUserDTO(u),
	})
}

func userExists(c *gin.Context) {
	httperr.BadRequest(c, "user_already_exists", "Username or email already exists.")
}

func invalidCredentials(c *gin.Context) {
	httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
}
