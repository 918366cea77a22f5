package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/openshelf/openshelf/internal/domain/catalog"
)

// Overview is everything the browse screen needs in one struct.
type Overview struct {
	Books      []catalog.BookView
	Authors    []catalog.Author
	Categories []catalog.Category
	Publishers []catalog.Publisher
}

// FetchOverview loads the browse data concurrently. The first failing fetch
// cancels the rest and is returned.
func (s *Services) FetchOverview(ctx context.Context) (*Overview, error) {
	var overview Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		books, err := s.Books.GetAll(ctx)
		if err != nil {
			return err
		}
		overview.Books = books
		return nil
	})
	g.Go(func() error {
		authors, err := s.Authors.GetAll(ctx)
		if err != nil {
			return err
		}
		overview.Authors = authors
		return nil
	})
	g.Go(func() error {
		categories, err := s.Categories.GetAll(ctx)
		if err != nil {
			return err
		}
		overview.Categories = categories
		return nil
	})
	g.Go(func() error {
		publishers, err := s.Publishers.GetAll(ctx)
		if err != nil {
			return err
		}
		overview.Publishers = publishers
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
