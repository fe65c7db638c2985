package dto

import "stayhub/response"

// PaginatedResponse wraps list payloads together with paging metadata.
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}
