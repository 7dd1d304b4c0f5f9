package services

import (
	"errors"

	"adboard/app/dto"
	"adboard/app/models"
	"adboard/app/repo"
	"adboard/app/validate"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	db       *gorm.DB
	users    *repo.UserRepository
	ads      *repo.AdvertisementRepository
	validate *validate.Validator
}

func NewUserService(db *gorm.DB, users *repo.UserRepository, ads *repo.AdvertisementRepository, v *validate.Validator) *UserService {
	return &UserService{db: db, users: users, ads: ads, validate: v}
}

// Create validates the payload, hashes the password and inserts the row.
// The plaintext password never reaches the repository.
func (s *UserService) Create(req dto.CreateUserRequest) (uint, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u := models.User{Name: req.Name, Email: req.Email, PasswordHash: string(hash)}
	if err := s.users.Create(&u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (s *UserService) Get(id uint) (*dto.UserResponse, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	return userToDTO(u), nil
}

// Update merges the submitted fields over the stored row. Only fields
// present in the payload are validated and written; the whole merge runs in
// one transaction so a failure leaves the row untouched.
func (s *UserService) Update(id uint, req dto.UpdateUserRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password_hash"] = string(hash)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		if _, err := users.FindByID(id); err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return users.Update(id, updates)
	})
}

// Delete removes the user and nulls out user_id on the user's
// advertisements in the same transaction. Advertisements themselves are
// kept.
func (s *UserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		if _, err := users.FindByID(id); err != nil {
			return err
		}
		if err := s.ads.WithTx(tx).DetachUser(id); err != nil {
			return err
		}
		return users.Delete(id)
	})
}

// ValidateCredentials resolves a user by name and compares the submitted
// password against the stored bcrypt hash.
func (s *UserService) ValidateCredentials(name, password string) (*models.User, error) {
	u, err := s.users.FindByName(name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func userToDTO(u *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		CreationTime: u.CreationTime.Format(dto.TimeLayout),
	}
}
