package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/utils/jwt"
	"github.com/skillpath/skillpath-server-go/pkg/response"
	"github.com/skillpath/skillpath-server-go/pkg/types"
)

const userContextKey = "current_user"

// User represents the authenticated user in middleware context.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;primaryKey" json:"id"`
	Email     string         `gorm:"column:email" json:"email"`
	FullName  string         `gorm:"column:full_name" json:"fullName"`
	UserType  types.UserType `gorm:"column:user_type" json:"userType"`
	Active    bool           `gorm:"column:is_active" json:"isActive"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// AuthMiddleware holds dependencies for authentication middleware.
type AuthMiddleware struct {
	db        *gorm.DB
	jwtSecret string
	logger    *slog.Logger
}

// New creates the auth middleware with its dependencies.
func New(db *gorm.DB, jwtSecret string, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		db:        db,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Authenticate validates the bearer token and loads the user into context.
// Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.ensureAuthenticated(c); !ok {
			return
		}
		c.Next()
	}
}

// AuthenticateOptional loads the user into context when a valid bearer token
// is present and lets the request through anonymously otherwise. Used by the
// public catalog endpoints, which personalize responses but never require a
// login.
func (m *AuthMiddleware) AuthenticateOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwt.VerifyToken(token, m.jwtSecret)
		if err != nil {
			c.Next()
			return
		}

		var usr User
		if err := m.db.First(&usr, "id = ?", claims.UserID).Error; err != nil || !usr.Active {
			c.Next()
			return
		}

		c.Set(userContextKey, &usr)
		c.Next()
	}
}

// RequireRoles authorizes users based on their user type. SUPERADMIN always has access.
func (m *AuthMiddleware) RequireRoles(roles ...types.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := GetUserFromContext(c)
		if !ok {
			response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "User not authenticated", nil)
			c.Abort()
			return
		}

		if usr.UserType == types.UserTypeSuperAdmin {
			c.Next()
			return
		}

		for _, role := range roles {
			if role == types.UserTypeAll || usr.UserType == role {
				c.Next()
				return
			}
		}

		response.ErrorWithLog(m.logger, c, http.StatusForbidden, "Access denied: Insufficient permissions.", nil)
		c.Abort()
	}
}

func (m *AuthMiddleware) ensureAuthenticated(c *gin.Context) (*User, bool) {
	if usr, ok := GetUserFromContext(c); ok {
		return usr, true
	}

	token := extractBearerToken(c)
	if token == "" {
		response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "Authentication required.", nil)
		c.Abort()
		return nil, false
	}

	claims, err := jwt.VerifyToken(token, m.jwtSecret)
	if err != nil {
		message := "Invalid token."
		if errors.Is(err, jwt.ErrExpiredToken) {
			message = "Token expired."
		}
		response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, message, err)
		c.Abort()
		return nil, false
	}

	var usr User
	if err := m.db.First(&usr, "id = ?", claims.UserID).Error; err != nil {
		response.ErrorWithLog(m.logger, c, http.StatusUnauthorized, "User not found.", err)
		c.Abort()
		return nil, false
	}

	if !usr.Active {
		response.ErrorWithLog(m.logger, c, http.StatusForbidden, "Account is inactive.", nil)
		c.Abort()
		return nil, false
	}

	c.Set(userContextKey, &usr)
	return &usr, true
}

// GetUserFromContext retrieves the authenticated user from gin context.
func GetUserFromContext(c *gin.Context) (*User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	usr, ok := value.(*User)
	return usr, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
