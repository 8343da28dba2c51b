package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/internal/features/user"
	"github.com/skillpath/skillpath-server-go/pkg/types"
)

// EnsureSuperAdmin creates or synchronizes the bootstrap super admin
// account from SKILLPATH_SUPERADMIN_EMAIL and
// SKILLPATH_SUPERADMIN_PASSWORD. A missing email disables the
// bootstrap entirely.
func EnsureSuperAdmin(db *gorm.DB, logger *slog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SKILLPATH_SUPERADMIN_EMAIL")))
	password := os.Getenv("SKILLPATH_SUPERADMIN_PASSWORD")

	if email == "" {
		logger.Info("super admin bootstrap skipped (SKILLPATH_SUPERADMIN_EMAIL not set)")
		return nil
	}

	if len(password) < 8 {
		return fmt.Errorf("SKILLPATH_SUPERADMIN_PASSWORD must be at least 8 characters")
	}

	existing, err := user.GetByEmail(db, email)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		_, createErr := user.Create(db, user.CreateInput{
			FullName: "Super Admin",
			Email:    email,
			Password: password,
			UserType: types.UserTypeSuperAdmin,
		})
		if createErr != nil {
			return fmt.Errorf("create super admin: %w", createErr)
		}

		logger.Info("super admin created", slog.String("email", email))
		return nil

	case err != nil:
		return fmt.Errorf("get super admin: %w", err)
	}

	updates := map[string]interface{}{}

	if existing.UserType != types.UserTypeSuperAdmin {
		updates["user_type"] = types.UserTypeSuperAdmin
	}

	if !existing.Active {
		updates["is_active"] = true
	}

	if len(updates) == 0 {
		return nil
	}

	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("update super admin: %w", err)
	}

	logger.Info("super admin synchronized", slog.String("email", email))
	return nil
}
