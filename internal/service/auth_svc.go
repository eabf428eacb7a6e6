package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/i-am-Shekinah/eventify/internal/domain"
	"github.com/i-am-Shekinah/eventify/internal/repository"
	"github.com/i-am-Shekinah/eventify/pkg/auth"
)

type AuthSvc struct {
	users  *repository.UserRepo
	tokens *auth.Manager
}

func NewAuthSvc(users *repository.UserRepo, tokens *auth.Manager) *AuthSvc {
	return &AuthSvc{users: users, tokens: tokens}
}

func (s *AuthSvc) Signup(ctx context.Context, firstname, lastname, email, password string) (*domain.User, error) {
	if _, err := s.users.ByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Firstname:    firstname,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.Email)
}
