package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/utils"
)

// UserIDPrefix id зарегистрированных пользователей, в отличие от guest:
const UserIDPrefix = "user:"

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)
	db := s.DB.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:             UserIDPrefix + uuid.NewString(),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          email,
		HashedPassword: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login одинаковая ошибка для неизвестного email и неверного пароля
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.HashedPassword == "" || !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GoogleProfile данные из userinfo Google
type GoogleProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// UpsertGoogle находит пользователя по email и привязывает Google ID, либо создает нового
func (s *UserService) UpsertGoogle(ctx context.Context, profile GoogleProfile) (*models.User, error) {
	email := normalizeEmail(profile.Email)
	if email == "" {
		return nil, ErrInvalidCredentials
	}
	db := s.DB.WithContext(ctx)

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if user.GoogleID == nil || *user.GoogleID != profile.ID {
			gid := profile.ID
			user.GoogleID = &gid
			if err := db.Model(&user).Update("google_id", gid).Error; err != nil {
				return nil, err
			}
		}
		return &user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	gid := profile.ID
	user = models.User{
		ID:        UserIDPrefix + uuid.NewString(),
		FirstName: profile.GivenName,
		LastName:  profile.FamilyName,
		Email:     email,
		GoogleID:  &gid,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
