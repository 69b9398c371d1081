package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

/* ===============================
   Paging params (query → page/limit/sort)
=================================*/

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

// ParseFiber normaliza ?page=, ?limit=, ?sort_by= e ?sort_order=.
// page < 1 vira 1; limit é limitado a [1,100] com default 20.
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) Params {
	page := atoiDefault(strings.TrimSpace(c.Query("page")), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := atoiDefault(strings.TrimSpace(c.Query("limit")), DefaultLimit)
	if per < 1 {
		per = DefaultLimit
	}
	if per > MaxLimit {
		per = MaxLimit
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	order := strings.ToLower(strings.TrimSpace(c.Query("sort_order")))
	if order != "asc" && order != "desc" {
		order = strings.ToLower(defaultSortOrder)
		if order != "asc" && order != "desc" {
			order = "desc"
		}
	}

	return Params{
		Page:      page,
		PerPage:   per,
		SortBy:    sortBy,
		SortOrder: order,
	}
}

func (p Params) Limit() int  { return p.PerPage }
func (p Params) Offset() int { return (p.Page - 1) * p.PerPage }

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

/* ===============================
   Pagination meta para response
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func BuildPagination(total int64, p Params) Pagination {
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage)) // ceil
	return Pagination{
		Page:       p.Page,
		Limit:      p.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
