package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/cppla/huxiang/dto"
	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

// UserService manages accounts and credentials.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService bound to db.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account with role user.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if len([]rune(username)) < 3 {
		return nil, ErrInvalidInput
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Active:       true,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, "username", username, 0, ErrUsernameTaken); err != nil {
			return err
		}
		if err := ensureUnique(tx, "email", email, 0, ErrEmailTaken); err != nil {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return &user, nil
}

// Authenticate checks credentials, accepting either a username or an email as identifier.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrUserInactive
	}
	return &user, nil
}

// Get loads a user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", id, err)
	}
	return &user, nil
}

// UpdateProfile changes bio, avatar and username; nil fields are left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if req.Bio != nil {
			user.Bio = utils.Sanitize(strings.TrimSpace(*req.Bio))
		}
		if req.Avatar != nil {
			user.Avatar = strings.TrimSpace(*req.Avatar)
		}
		if req.Username != nil {
			username := strings.TrimSpace(*req.Username)
			if len([]rune(username)) < 3 {
				return ErrInvalidInput
			}
			if username != user.Username {
				if err := ensureUnique(tx, "username", username, user.ID, ErrUsernameTaken); err != nil {
					return err
				}
				user.Username = username
			}
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrInvalidInput):
			return nil, err
		}
		return nil, fmt.Errorf("update profile %d: %w", id, err)
	}
	return &user, nil
}

// ensureUnique fails with conflict when another user (not exceptID) already holds value.
func ensureUnique(tx *gorm.DB, column, value string, exceptID uint, conflict error) error {
	var count int64
	q := tx.Model(&models.User{}).Where(column+" = ?", value)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return conflict
	}
	return nil
}
