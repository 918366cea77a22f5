package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Fines is the client for the /Fines resource.
type Fines struct {
	client *transport.Client
}

func NewFines(client *transport.Client) *Fines {
	return &Fines{client: client}
}

func (s *Fines) GetAll(ctx context.Context) ([]catalog.FineView, error) {
	var fines []catalog.FineView
	if err := s.client.Get(ctx, "/Fines", nil, &fines); err != nil {
		return nil, err
	}
	return fines, nil
}

func (s *Fines) GetByID(ctx context.Context, id int64) (*catalog.FineView, error) {
	var fine catalog.FineView
	if err := s.client.Get(ctx, resourcePath("/Fines", id), nil, &fine); err != nil {
		return nil, err
	}
	return &fine, nil
}

// Create raises a fine against a loan, a user, or both. The server derives
// amount and reason; the identifiers travel as query parameters, not a body.
func (s *Fines) Create(ctx context.Context, loanID, userID int64) error {
	values := url.Values{}
	if loanID != 0 {
		values.Set("loanId", strconv.FormatInt(loanID, 10))
	}
	if userID != 0 {
		values.Set("userId", strconv.FormatInt(userID, 10))
	}
	return s.client.Post(ctx, "/Fines", values, nil, nil)
}

func (s *Fines) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Fines", id), nil)
}

func (s *Fines) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Fines", ids)
}

// Pay settles the fine.
func (s *Fines) Pay(ctx context.Context, id int64) error {
	return s.client.Put(ctx, resourcePath("/Fines", id)+"/pay", nil, nil, nil)
}
