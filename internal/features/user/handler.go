package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/middleware"
	"github.com/skillpath/skillpath-server-go/pkg/apperrors"
	"github.com/skillpath/skillpath-server-go/pkg/response"
)

// Handler processes user HTTP requests.
type Handler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHandler constructs a user handler instance.
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	authUser, ok := middleware.GetUserFromContext(c)
	if !ok {
		response.ErrorWithLog(h.logger, c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	usr, err := Get(h.db, authUser.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		_ = c.Error(apperrors.Wrap(err, "Failed to load profile.", http.StatusInternalServerError, apperrors.ErrInternal))
		return
	}

	response.Success(c, http.StatusOK, usr, "", nil)
}
