package services

import (
	"errors"
	"strings"

	"quill/models"
	"quill/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register validates the signup payload and creates the user with a bcrypt
// password hash. Email uniqueness is checked up front so a duplicate maps to
// a conflict rather than a raw constraint error.
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" ||
		!utils.ValidUsername(req.Username) ||
		!utils.ValidEmail(req.Email) ||
		!utils.ValidPassword(req.Password) {
		return nil, ErrBadRequest
	}

	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: strings.TrimSpace(req.Password),
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// Login resolves credentials to a user. A missing account maps to ErrNotFound
// (the API answers it with a conflict, not a 404) and a bad password to
// ErrUnauthorized.
func (s *UserService) Login(req *models.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrBadRequest
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !user.CheckPassword(strings.TrimSpace(req.Password)) {
		return nil, ErrUnauthorized
	}

	return &user, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
