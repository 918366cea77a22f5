package catalog

import "time"

// Publisher is a publisher record.
type Publisher struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Books       []Book    `json:"books,omitempty"`
	CreatedTime time.Time `json:"createdTime"`
	UpdatedTime time.Time `json:"updatedTime"`
}

// EditPublisher is the write model for creating and updating publishers.
type EditPublisher struct {
	Name string `json:"name"`
}
