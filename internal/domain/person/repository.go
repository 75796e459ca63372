package person

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("person not found")
	ErrConflict = errors.New("person already exists")
)

type NewPerson struct {
	Name         string
	Surname      string
	Pnr          string
	Email        string
	Username     string
	PasswordHash string
	Role         Role
}

type Repository interface {
	Create(ctx context.Context, p NewPerson) (Person, error)
	FindByID(ctx context.Context, id int64) (Person, error)
	FindByUsername(ctx context.Context, username string) (Person, error)
}
