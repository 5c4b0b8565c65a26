package dto

// PaginationInfo describes the window a list response was cut from.
type PaginationInfo struct {
	Page            int   `json:"page" example:"1"`
	Limit           int   `json:"limit" example:"10"`
	Total           int64 `json:"total" example:"42"`
	TotalPages      int   `json:"totalPages" example:"5"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PaginatedResponse is the envelope returned by every list endpoint.
type PaginatedResponse struct {
	Data       interface{}    `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPaginatedResponse wraps items with their pagination metadata.
func NewPaginatedResponse(data interface{}, pagination PaginationInfo) PaginatedResponse {
	return PaginatedResponse{Data: data, Pagination: pagination}
}

// MessageResponse is a bare acknowledgement body, used by deletes.
type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}
