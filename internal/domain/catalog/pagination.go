package catalog

// SortOrder matches the sort direction tokens the API understands.
type SortOrder string

const (
	SortAscend  SortOrder = "ascend"
	SortDescend SortOrder = "descend"
)

// PageRequest is the pagination request body understood by list endpoints.
type PageRequest struct {
	PageIndex int       `json:"pageIndex"`
	PageSize  int       `json:"pageSize"`
	SortField string    `json:"sortField,omitempty"`
	SortOrder SortOrder `json:"sortOrder,omitempty"`
}

// Page is the paginated response envelope.
type Page[T any] struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
	Items     []T `json:"items"`
}
