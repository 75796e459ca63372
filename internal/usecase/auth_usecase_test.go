package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recruitly/internal/domain/person"
	"recruitly/internal/pkg/session"
	"recruitly/internal/pkg/validate"
)

type fakeSessionService struct {
	issued []int64
}

func (s *fakeSessionService) Issue(personID int64, _ string) (string, error) {
	s.issued = append(s.issued, personID)
	return "token", nil
}

func (s *fakeSessionService) Verify(string) (session.Claims, error) {
	return session.Claims{}, session.ErrTokenInvalid
}

func (s *fakeSessionService) TTL() time.Duration { return time.Hour }

func validRegistration() RegisterInput {
	return RegisterInput{
		Name:     "Anna",
		Surname:  "Larsson",
		Pnr:      "199001011234",
		Email:    "anna@example.com",
		Username: "anna01",
		Password: "correct horse",
	}
}

func TestRegister_Success(t *testing.T) {
	persons := &fakePersonRepo{}
	uc := NewAuthUsecase(persons, &fakeSessionService{})

	p, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Role != person.RoleApplicant {
		t.Fatalf("registration must always create an applicant, got %q", p.Role)
	}
	if p.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if len(persons.created) != 1 {
		t.Fatalf("expected one created person")
	}
	stored := persons.created[0]
	if stored.PasswordHash == "correct horse" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_FieldValidation(t *testing.T) {
	uc := NewAuthUsecase(&fakePersonRepo{}, &fakeSessionService{})

	mutations := []func(*RegisterInput){
		func(in *RegisterInput) { in.Name = "" },
		func(in *RegisterInput) { in.Surname = "L4rsson" },
		func(in *RegisterInput) { in.Pnr = "12345" },
		func(in *RegisterInput) { in.Email = "not-an-email" },
		func(in *RegisterInput) { in.Username = "ab" },
		func(in *RegisterInput) { in.Username = "anna 01" },
		func(in *RegisterInput) { in.Password = "short" },
	}
	for i, mutate := range mutations {
		in := validRegistration()
		mutate(&in)
		var ve *validate.Error
		if _, err := uc.Register(context.Background(), in); !errors.As(err, &ve) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestRegister_Conflict(t *testing.T) {
	persons := &fakePersonRepo{createErr: person.ErrConflict}
	uc := NewAuthUsecase(persons, &fakeSessionService{})

	if _, err := uc.Register(context.Background(), validRegistration()); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_ShortUsernameBeforeLookup(t *testing.T) {
	persons := &fakePersonRepo{}
	uc := NewAuthUsecase(persons, &fakeSessionService{})

	var ve *validate.Error
	_, _, err := uc.Login(context.Background(), LoginInput{Username: "ab", Password: "whatever"})
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if persons.usernameCalls != 0 {
		t.Fatalf("lookup must not run when validation fails")
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	persons := &fakePersonRepo{byUsername: map[string]person.Person{
		"anna01": {ID: 5, Username: "anna01", PasswordHash: string(hash), Role: person.RoleApplicant},
	}}
	sessions := &fakeSessionService{}
	uc := NewAuthUsecase(persons, sessions)

	p, token, err := uc.Login(context.Background(), LoginInput{Username: "anna01", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if token != "token" {
		t.Fatalf("expected issued token")
	}
	if p.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if len(sessions.issued) != 1 || sessions.issued[0] != 5 {
		t.Fatalf("expected a token issued for person 5")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	persons := &fakePersonRepo{byUsername: map[string]person.Person{
		"anna01": {ID: 5, Username: "anna01", PasswordHash: string(hash)},
	}}
	uc := NewAuthUsecase(persons, &fakeSessionService{})

	if _, _, err := uc.Login(context.Background(), LoginInput{Username: "anna01", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUsername(t *testing.T) {
	uc := NewAuthUsecase(&fakePersonRepo{}, &fakeSessionService{})

	if _, _, err := uc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
