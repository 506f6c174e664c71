package services

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// UserPatch is a partial update of a user profile. Each field is an explicit
// optional.
type UserPatch struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserService handles business logic for user profiles.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetProfile retrieves a user profile by ID.
func (s *UserService) GetProfile(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = "" // Never expose the hash
	return user, nil
}

// UpdateProfile applies a partial update to a user profile. A new password
// must differ from the current one.
func (s *UserService) UpdateProfile(id string, patch UserPatch) (*models.User, error) {
	existing, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	assignments := make(map[string]interface{})
	if patch.Email != nil {
		if !emailPattern.MatchString(*patch.Email) {
			return nil, apperrors.New(apperrors.KindValidation, "invalid email format")
		}
		assignments["email"] = *patch.Email
	}
	if patch.Password != nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(*patch.Password)) == nil {
			return nil, apperrors.New(apperrors.KindValidation, "you chose the same password")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, err, "failed to hash password")
		}
		assignments["password"] = string(hashed)
	}
	if len(assignments) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "no fields to update")
	}

	if err := s.userRepo.UpdateFields(id, assignments); err != nil {
		return nil, err
	}
	return s.GetProfile(id)
}

// DeleteProfile deletes a user profile by ID.
func (s *UserService) DeleteProfile(id string) error {
	return s.userRepo.Delete(id)
}
