package services

import (
	"inkwell/app/apperr"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles account registration, sign-in and profile management.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SignUpInput carries the fields of a registration request.
type SignUpInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput is a partial profile patch; empty fields stay unchanged.
type UpdateUserInput struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
}

// SignUp registers a new account with a bcrypt-hashed password.
func (s *UserService) SignUp(input SignUpInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, apperr.BadRequest("All fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrDuplicate {
			return nil, apperr.BadRequest("Username or email already in use")
		}
		return nil, err
	}
	return user, nil
}

// SignIn checks the credentials and returns the matching user.
func (s *UserService) SignIn(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperr.BadRequest("All fields are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err == repositories.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.BadRequest("Invalid password")
	}
	return user, nil
}

// GetUser returns a user's public profile.
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err == repositories.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial profile patch. Users may only update
// themselves unless they are administrators.
func (s *UserService) UpdateUser(requester *models.Requester, userID string, input UpdateUserInput) (*models.User, error) {
	if requester == nil {
		return nil, apperr.Unauthorized("Unauthorized: Please log in")
	}
	if !requester.IsAdmin && requester.ID != userID {
		return nil, apperr.Forbidden("You are not allowed to update this user")
	}

	user, err := s.userRepo.GetByID(userID)
	if err == repositories.ErrNotFound {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.ProfilePicture != "" {
		user.ProfilePicture = input.ProfilePicture
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := user.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := s.userRepo.Update(user); err != nil {
		if err == repositories.ErrDuplicate {
			return nil, apperr.BadRequest("Username or email already in use")
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Allowed for the user themselves and for
// administrators.
func (s *UserService) DeleteUser(requester *models.Requester, userID string) (string, error) {
	if requester == nil {
		return "", apperr.Unauthorized("Unauthorized: Please log in")
	}
	if !requester.IsAdmin && requester.ID != userID {
		return "", apperr.Forbidden("You are not allowed to delete this user")
	}

	if err := s.userRepo.Delete(userID); err != nil {
		if err == repositories.ErrNotFound {
			return "", apperr.NotFound("User not found")
		}
		return "", err
	}
	return "User has been deleted", nil
}
