package catalog

import "time"

// Author is an author record with its optional book associations.
type Author struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Biography   string    `json:"biography,omitempty"`
	Books       []Book    `json:"books,omitempty"`
	CreatedTime time.Time `json:"createdTime"`
	UpdatedTime time.Time `json:"updatedTime"`
}

// EditAuthor is the write model for creating and updating authors.
type EditAuthor struct {
	Name      string `json:"name"`
	Biography string `json:"biography,omitempty"`
}
