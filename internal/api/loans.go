package api

import (
	"context"

	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Loans is the client for the /Loans resource.
type Loans struct {
	client *transport.Client
}

func NewLoans(client *transport.Client) *Loans {
	return &Loans{client: client}
}

func (s *Loans) GetAll(ctx context.Context) ([]catalog.LoanView, error) {
	var loans []catalog.LoanView
	if err := s.client.Get(ctx, "/Loans", nil, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (s *Loans) GetByID(ctx context.Context, id int64) (*catalog.LoanView, error) {
	var loan catalog.LoanView
	if err := s.client.Get(ctx, resourcePath("/Loans", id), nil, &loan); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (s *Loans) Create(ctx context.Context, edit catalog.EditLoan) error {
	return s.client.Post(ctx, "/Loans", nil, edit, nil)
}

func (s *Loans) Update(ctx context.Context, id int64, edit catalog.EditLoan) error {
	return s.client.Put(ctx, resourcePath("/Loans", id), nil, edit, nil)
}

func (s *Loans) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Loans", id), nil)
}

func (s *Loans) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Loans", ids)
}

// Return marks the loaned book as returned.
func (s *Loans) Return(ctx context.Context, id int64) error {
	return s.client.Put(ctx, resourcePath("/Loans", id)+"/return", nil, nil, nil)
}
