package api

import (
	"context"

	"github.com/openshelf/openshelf/internal/domain/auth"
	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Users is the client for the /Users resource, including the register and
// login endpoints that sit under it.
type Users struct {
	client *transport.Client
}

func NewUsers(client *transport.Client) *Users {
	return &Users{client: client}
}

func (s *Users) GetAll(ctx context.Context) ([]catalog.User, error) {
	var users []catalog.User
	if err := s.client.Get(ctx, "/Users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) GetByID(ctx context.Context, id int64) (*catalog.User, error) {
	var user catalog.User
	if err := s.client.Get(ctx, resourcePath("/Users", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) Update(ctx context.Context, id int64, edit catalog.EditUser) error {
	return s.client.Put(ctx, resourcePath("/Users", id), nil, edit, nil)
}

func (s *Users) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Users", id), nil)
}

func (s *Users) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Users", ids)
}

// Register creates a new account and returns the stored user record.
func (s *Users) Register(ctx context.Context, edit catalog.EditUser) (*catalog.User, error) {
	var user catalog.User
	if err := s.client.Post(ctx, "/Users/register", nil, edit, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token and the signed-in identity.
func (s *Users) Login(ctx context.Context, creds catalog.LoginRequest) (*auth.AuthResponse, error) {
	var resp auth.AuthResponse
	if err := s.client.Post(ctx, "/Users/login", nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
