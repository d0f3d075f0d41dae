package store

import (
	"errors"

	"matchday/internal/forum/models"
	"matchday/internal/utils"

	"gorm.io/gorm"
)

// RegisterUser creates an account with a bcrypt-hashed password. Email is
// optional; when given it must be unique. Duplicates are detected with a
// query before insert, the same check the unique indexes enforce.
func RegisterUser(db *gorm.DB, username, email, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrDuplicateUsername
	}
	if email != "" {
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: hash,
	}
	if email != "" {
		user.Email = &email
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies a username/password pair. Unknown usernames and
// hash mismatches produce the same error so the response does not reveal
// which part was wrong.
func AuthenticateUser(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
