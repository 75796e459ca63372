package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recruitly/internal/domain/person"
	"recruitly/internal/pkg/session"
	"recruitly/internal/pkg/validate"
)

var (
	ErrUsernameTaken      = errors.New("username, pnr or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Name     string
	Surname  string
	Pnr      string
	Email    string
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (person.Person, error)
	Login(ctx context.Context, in LoginInput) (person.Person, string, error)
}

type Auth struct {
	persons  person.Repository
	sessions session.Service
}

func NewAuthUsecase(persons person.Repository, sessions session.Service) *Auth {
	return &Auth{persons: persons, sessions: sessions}
}

// Register creates an applicant account. The role is fixed: recruiter
// accounts are provisioned by the seeder, never through this endpoint.
func (s *Auth) Register(ctx context.Context, in RegisterInput) (person.Person, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.Pnr = strings.TrimSpace(in.Pnr)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if err := validate.NonEmptyString(in.Name, "name"); err != nil {
		return person.Person{}, err
	}
	if err := validate.Alphabetic(in.Name, "name"); err != nil {
		return person.Person{}, err
	}
	if err := validate.NonEmptyString(in.Surname, "surname"); err != nil {
		return person.Person{}, err
	}
	if err := validate.Alphabetic(in.Surname, "surname"); err != nil {
		return person.Person{}, err
	}
	if err := validate.Digits(in.Pnr, 12, "pnr"); err != nil {
		return person.Person{}, err
	}
	if err := validate.Email(in.Email, "email"); err != nil {
		return person.Person{}, err
	}
	if err := validate.LengthInRange(in.Username, 3, 30, "username"); err != nil {
		return person.Person{}, err
	}
	if err := validate.Alphanumeric(in.Username, "username"); err != nil {
		return person.Person{}, err
	}
	if err := validate.LengthInRange(in.Password, 8, 72, "password"); err != nil {
		return person.Person{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return person.Person{}, ErrInternal
	}

	created, err := s.persons.Create(ctx, person.NewPerson{
		Name:         in.Name,
		Surname:      in.Surname,
		Pnr:          in.Pnr,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         person.RoleApplicant,
	})
	if err != nil {
		if errors.Is(err, person.ErrConflict) {
			return person.Person{}, ErrUsernameTaken
		}
		return person.Person{}, ErrInternal
	}

	return sanitize(created), nil
}

// Login validates the credentials shape before any persistence lookup, then
// compares the bcrypt hash and issues a session token.
func (s *Auth) Login(ctx context.Context, in LoginInput) (person.Person, string, error) {
	username := strings.TrimSpace(in.Username)
	if err := validate.LengthInRange(username, 3, 30, "username"); err != nil {
		return person.Person{}, "", err
	}
	if err := validate.NonEmptyString(in.Password, "password"); err != nil {
		return person.Person{}, "", err
	}

	p, err := s.persons.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, person.ErrNotFound) {
			return person.Person{}, "", ErrInvalidCredentials
		}
		return person.Person{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.Password)); err != nil {
		return person.Person{}, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(p.ID, p.Username)
	if err != nil {
		return person.Person{}, "", ErrInternal
	}

	return sanitize(p), token, nil
}

func sanitize(p person.Person) person.Person {
	p.PasswordHash = ""
	return p
}
