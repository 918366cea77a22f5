package api

import (
	"context"

	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Categories is the client for the /Categories resource.
type Categories struct {
	client *transport.Client
}

func NewCategories(client *transport.Client) *Categories {
	return &Categories{client: client}
}

func (s *Categories) GetAll(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := s.client.Get(ctx, "/Categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Categories) GetByID(ctx context.Context, id int64) (*catalog.Category, error) {
	var category catalog.Category
	if err := s.client.Get(ctx, resourcePath("/Categories", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *Categories) Create(ctx context.Context, edit catalog.EditCategory) error {
	return s.client.Post(ctx, "/Categories", nil, edit, nil)
}

func (s *Categories) Update(ctx context.Context, id int64, edit catalog.EditCategory) error {
	return s.client.Put(ctx, resourcePath("/Categories", id), nil, edit, nil)
}

func (s *Categories) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Categories", id), nil)
}

func (s *Categories) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Categories", ids)
}
