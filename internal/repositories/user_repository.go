package repositories

import (
	"errors"
	"strings"

	"jobconnect/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert violates a unique index. The
// match is driver-agnostic so the sqlite-backed tests exercise the same path
// as postgres.
var ErrDuplicateKey = errors.New("duplicate key")

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

type UserRepository struct{}

func NewUserRepository() UserRepository {
	return UserRepository{}
}

func (r UserRepository) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r UserRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r UserRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r UserRepository) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}
