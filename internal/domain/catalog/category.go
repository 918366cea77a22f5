package catalog

import "time"

// Category is a book category record.
type Category struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	BookCategories []BookCategory `json:"bookCategories,omitempty"`
	CreatedTime    time.Time      `json:"createdTime"`
	UpdatedTime    time.Time      `json:"updatedTime"`
}

// BookCategory is the book/category join record.
type BookCategory struct {
	BookID      int64     `json:"bookId"`
	Book        *Book     `json:"book,omitempty"`
	CategoryID  int64     `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	CreatedTime time.Time `json:"createdTime"`
	UpdatedTime time.Time `json:"updatedTime"`
}

// EditCategory is the write model for creating and updating categories.
type EditCategory struct {
	Name string `json:"name"`
}
