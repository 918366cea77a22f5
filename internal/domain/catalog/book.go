package catalog

// Package catalog contains the data model for the library-management API.
// Shapes mirror the JSON the API serves; optional associations stay nullable.

import "time"

// Book is the full book record including associations.
type Book struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	ISBN           string         `json:"isbn"`
	PublishedDate  time.Time      `json:"publishedDate"`
	Stock          int            `json:"stock"`
	Available      int            `json:"available"`
	AuthorID       int64          `json:"authorId"`
	PublisherID    int64          `json:"publisherId"`
	Author         *Author        `json:"author,omitempty"`
	Publisher      *Publisher     `json:"publisher,omitempty"`
	BookCategories []BookCategory `json:"bookCategories,omitempty"`
	Loans          []Loan         `json:"loans,omitempty"`
	CreatedTime    time.Time      `json:"createdTime"`
	UpdatedTime    time.Time      `json:"updatedTime"`
}

// BookView is the flattened read model served by /Books.
type BookView struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	PublishedDate time.Time `json:"publishedDate"`
	Stock         int       `json:"stock"`
	Available     int       `json:"available"`
	AuthorName    string    `json:"authorName,omitempty"`
	PublisherName string    `json:"publisherName,omitempty"`
	CategoryNames []string  `json:"categoryNames,omitempty"`
}

// RawBook is the id/name projection served by /RawBooks, used to populate
// selection lists without dragging in associations.
type RawBook struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// EditBook is the write model for creating and updating books.
type EditBook struct {
	Title         string     `json:"title"`
	ISBN          string     `json:"isbn"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	Stock         *int       `json:"stock,omitempty"`
	Available     *int       `json:"available,omitempty"`
	AuthorID      int64      `json:"authorId"`
	PublisherID   int64      `json:"publisherId"`
	CategoryIDs   []int64    `json:"categoryIds"`
}

// BookSearch carries the supported search filters for /Books/search.
// Zero-valued fields are omitted from the query string.
type BookSearch struct {
	Title              string
	ISBN               string
	AuthorName         string
	CategoryName       string
	PublisherName      string
	PublishedDateBegin string
	PublishedDateEnd   string
}
