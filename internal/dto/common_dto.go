package dto

// Layouts accepted for date and time-of-day fields in request payloads.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// PaginationMeta captures pagination metadata for list responses.
type PaginationMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// DeleteResponse is returned once a resource has been removed.
type DeleteResponse struct {
	ID uint `json:"id"`
}
