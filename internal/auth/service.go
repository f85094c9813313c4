package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin seeds the admin account from env config at startup.
// It is a no-op when the account already exists.
func (s *Service) EnsureAdmin(name, email, password string) error {
	if email == "" || password == "" {
		return errors.New("missing admin credentials")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	return s.repo.Save(&User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     "ADMIN",
	})
}
