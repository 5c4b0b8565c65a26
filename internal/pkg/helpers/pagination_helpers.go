package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ets-hub/etshub-backend/internal/app/models/dto"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1 // page numbers are 1-based
)

// CalculateOffsetLimit normalizes a 1-based page request into the SQL
// offset/limit pair. The query range is [offset, offset+limit-1].
func CalculateOffsetLimit(page, limit int) (offset uint64, normalized int) {
	normalized = NormalizeLimit(limit, DefaultLimit)
	if page < 1 {
		page = DefaultPage
	}
	offset = uint64((page - 1) * normalized)
	return offset, normalized
}

// NormalizeLimit clamps a requested page size to [1, MaxLimit], falling
// back to the endpoint's default when out of range.
func NormalizeLimit(limit, fallback int) int {
	if limit <= 0 || limit > MaxLimit {
		return fallback
	}
	return limit
}

// NewPaginationInfo builds the standard pagination block. A total of
// zero yields zero pages; otherwise totalPages = ceil(total/limit).
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && total > 0,
	}
}

// ParsePaginationParams extracts page/limit query parameters with the
// standard defaults.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	return ParsePaginationParamsWithDefault(c, DefaultLimit)
}

// ParsePaginationParamsWithDefault extracts page/limit with a custom
// default limit (the community registrations listing defaults to 100).
func ParsePaginationParamsWithDefault(c *gin.Context, defaultLimit int) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		limit = defaultLimit
	}
	limit = NormalizeLimit(limit, defaultLimit)

	return page, limit
}
