package api

import (
	"context"

	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Authors is the client for the /Authors resource.
type Authors struct {
	client *transport.Client
}

func NewAuthors(client *transport.Client) *Authors {
	return &Authors{client: client}
}

func (s *Authors) GetAll(ctx context.Context) ([]catalog.Author, error) {
	var authors []catalog.Author
	if err := s.client.Get(ctx, "/Authors", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (s *Authors) GetByID(ctx context.Context, id int64) (*catalog.Author, error) {
	var author catalog.Author
	if err := s.client.Get(ctx, resourcePath("/Authors", id), nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *Authors) Create(ctx context.Context, edit catalog.EditAuthor) (*catalog.Author, error) {
	var author catalog.Author
	if err := s.client.Post(ctx, "/Authors", nil, edit, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

func (s *Authors) Update(ctx context.Context, id int64, edit catalog.EditAuthor) error {
	return s.client.Put(ctx, resourcePath("/Authors", id), nil, edit, nil)
}

func (s *Authors) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Authors", id), nil)
}

func (s *Authors) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Authors", ids)
}
