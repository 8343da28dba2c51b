package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/features/user"
	"github.com/skillpath/skillpath-server-go/pkg/config"
	"github.com/skillpath/skillpath-server-go/pkg/response"
)

// Handler processes authentication HTTP requests.
type Handler struct {
	db     *gorm.DB
	cfg    TokenConfig
	logger *slog.Logger
}

// NewHandler constructs an auth handler instance.
func NewHandler(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		db: db,
		cfg: TokenConfig{
			JWTSecret:          cfg.JWTSecret,
			JWTRefreshSecret:   cfg.JWTRefreshSecret,
			AccessTokenExpiry:  cfg.AccessTokenExpiry,
			RefreshTokenExpiry: cfg.RefreshTokenExpiry,
		},
		logger: logger,
	}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Register creates a new student account and returns a token pair.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	result, err := Register(h.db, RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}, h.cfg)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("user registered", "user_id", result.User.ID, "email", result.User.Email)
	response.Created(c, result, "Account created successfully.")
}

// Login authenticates a user and returns a token pair.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}

	result, err := Login(h.db, LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, h.cfg)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.logger.Info("user logged in", "user_id", result.User.ID)
	response.Success(c, http.StatusOK, result, "Logged in successfully.", nil)
}

// RefreshToken rotates the token pair using a valid refresh token.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.Error(c, http.StatusBadRequest, "Refresh token is required.", nil)
		return
	}

	result, err := Refresh(h.db, req.RefreshToken, h.cfg)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, "Token refreshed.", nil)
}

// Logout invalidates the stored refresh token.
func (h *Handler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	if err := Logout(h.db, token, h.cfg); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Logged out successfully.", nil)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, user.ErrNameRequired),
		errors.Is(err, user.ErrInvalidEmail):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, user.ErrEmailTaken):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, ErrInactiveAccount):
		response.Error(c, http.StatusForbidden, err.Error(), nil)
	default:
		response.ErrorWithLog(h.logger, c, http.StatusInternalServerError, "Something went wrong.", err)
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
