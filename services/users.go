package services

import (
	"errors"

	"staffMan/dto/user"
	"staffMan/models"
	"staffMan/repositories"
	"staffMan/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct{}

// RegisterUser creates an account and returns a session token for it.
// The email must not already be taken.
func (us *UserService) RegisterUser(data user.UserRegisterDTO) (string, error) {
	existingUser, err := repositories.GetUserByEmail(data.Email)
	if err != nil {
		return "", err
	}

	if existingUser != nil {
		return "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	newUser := &models.User{
		UserName:    data.UserName,
		Password:    string(hashedPassword),
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
	}

	if err := repositories.CreateUser(newUser); err != nil {
		return "", err
	}

	return utils.GenerateToken(newUser.ID.Hex())
}

// LoginUser answers with the same error for an unknown name and a wrong
// password, so callers cannot probe which usernames exist.
func (us *UserService) LoginUser(userName, password string) (string, error) {
	account, err := repositories.GetUserByUserName(userName)
	if err != nil {
		return "", err
	}

	if account == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(account.ID.Hex())
}
