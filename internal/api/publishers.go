package api

import (
	"context"

	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Publishers is the client for the /Publishers resource.
type Publishers struct {
	client *transport.Client
}

func NewPublishers(client *transport.Client) *Publishers {
	return &Publishers{client: client}
}

func (s *Publishers) GetAll(ctx context.Context) ([]catalog.Publisher, error) {
	var publishers []catalog.Publisher
	if err := s.client.Get(ctx, "/Publishers", nil, &publishers); err != nil {
		return nil, err
	}
	return publishers, nil
}

func (s *Publishers) GetByID(ctx context.Context, id int64) (*catalog.Publisher, error) {
	var publisher catalog.Publisher
	if err := s.client.Get(ctx, resourcePath("/Publishers", id), nil, &publisher); err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (s *Publishers) Create(ctx context.Context, edit catalog.EditPublisher) error {
	return s.client.Post(ctx, "/Publishers", nil, edit, nil)
}

func (s *Publishers) Update(ctx context.Context, id int64, edit catalog.EditPublisher) error {
	return s.client.Put(ctx, resourcePath("/Publishers", id), nil, edit, nil)
}

func (s *Publishers) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Publishers", id), nil)
}

func (s *Publishers) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Publishers", ids)
}
