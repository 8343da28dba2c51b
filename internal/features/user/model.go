package user

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-server-go/pkg/types"
)

// User represents a system user.
type User struct {
	types.BaseModel

	FullName     string         `gorm:"type:varchar(60);not null;column:full_name" json:"fullName"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password     string         `gorm:"type:varchar(255);not null" json:"-"`
	UserType     types.UserType `gorm:"type:varchar(20);not null;default:'student';column:user_type;index" json:"userType"`
	RefreshToken *string        `gorm:"type:text;column:refresh_token" json:"-"`
	Active       bool           `gorm:"type:boolean;not null;default:true;column:is_active;index" json:"isActive"`
}

// TableName overrides the default table name.
func (User) TableName() string { return "users" }

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateInput carries data for creating a new user.
type CreateInput struct {
	FullName string
	Email    string
	Password string
	UserType types.UserType
	Active   *bool
}

// Get retrieves a user by ID.
func Get(db *gorm.DB, id uuid.UUID) (User, error) {
	var usr User
	if err := db.First(&usr, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return usr, ErrUserNotFound
		}
		return usr, err
	}
	return usr, nil
}

// GetByEmail retrieves a user by e-mail address.
func GetByEmail(db *gorm.DB, email string) (User, error) {
	var usr User
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := db.First(&usr, "LOWER(email) = ?", normalized).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return usr, ErrUserNotFound
		}
		return usr, err
	}
	return usr, nil
}

// Create inserts a new user with a hashed password.
func Create(db *gorm.DB, input CreateInput) (User, error) {
	trimmedName := strings.TrimSpace(input.FullName)
	if trimmedName == "" {
		return User{}, ErrNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailRegex.MatchString(email) {
		return User{}, ErrInvalidEmail
	}

	var existing User
	err := db.First(&existing, "LOWER(email) = ?", email).Error
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if err != gorm.ErrRecordNotFound {
		return User{}, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return User{}, err
	}

	userType := input.UserType
	if userType == "" {
		userType = types.UserTypeStudent
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	usr := User{
		FullName: trimmedName,
		Email:    email,
		Password: hashed,
		UserType: userType,
		Active:   active,
	}

	if err := db.Create(&usr).Error; err != nil {
		return User{}, err
	}

	return usr, nil
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a plaintext password against the stored hash.
func (u *User) ComparePassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
