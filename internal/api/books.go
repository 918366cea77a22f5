package api

import (
	"context"
	"net/url"

	"github.com/openshelf/openshelf/internal/domain/catalog"
	"github.com/openshelf/openshelf/internal/transport"
)

// Books is the client for the /Books and /RawBooks resources.
type Books struct {
	client *transport.Client
}

func NewBooks(client *transport.Client) *Books {
	return &Books{client: client}
}

func (s *Books) GetAll(ctx context.Context) ([]catalog.BookView, error) {
	var books []catalog.BookView
	if err := s.client.Get(ctx, "/Books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetRaw returns the id/title projection used to populate selection lists.
func (s *Books) GetRaw(ctx context.Context) ([]catalog.RawBook, error) {
	var books []catalog.RawBook
	if err := s.client.Get(ctx, "/RawBooks", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Books) GetByID(ctx context.Context, id int64) (*catalog.BookView, error) {
	var book catalog.BookView
	if err := s.client.Get(ctx, resourcePath("/Books", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Search filters the catalog. Zero-valued fields are left out of the query.
func (s *Books) Search(ctx context.Context, search catalog.BookSearch) ([]catalog.BookView, error) {
	var books []catalog.BookView
	if err := s.client.Get(ctx, "/Books/search", searchValues(search), &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *Books) Add(ctx context.Context, edit catalog.EditBook) error {
	return s.client.Post(ctx, "/Books/add", nil, edit, nil)
}

func (s *Books) Update(ctx context.Context, id int64, edit catalog.EditBook) error {
	return s.client.Put(ctx, resourcePath("/Books", id), nil, edit, nil)
}

func (s *Books) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, resourcePath("/Books", id), nil)
}

func (s *Books) BatchDelete(ctx context.Context, ids []int64) error {
	return s.client.Delete(ctx, "/Books", ids)
}

func searchValues(search catalog.BookSearch) url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("title", search.Title)
	set("isbn", search.ISBN)
	set("authorName", search.AuthorName)
	set("categoryName", search.CategoryName)
	set("publisherName", search.PublisherName)
	set("publishedDateBegin", search.PublishedDateBegin)
	set("publishedDateEnd", search.PublishedDateEnd)
	return values
}
