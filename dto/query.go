package dto

import (
	"strconv"
	"strings"
)

// Resource listing sort orders.
const (
	SortLatest   = "latest"
	SortPopular  = "popular"
	SortPriority = "priority"
)

// ListFilter carries the conjunctive filters of a listing. Empty strings mean "no filter".
type ListFilter struct {
	Page
	Type     string
	Category string
	Search   string
	Status   string
	Sort     string
}

// ListResourcesQuery binds GET /resources query parameters.
type ListResourcesQuery struct {
	Page     string `form:"page"`
	PerPage  string `form:"per_page"`
	Type     string `form:"type" binding:"max=64"`
	Category string `form:"category" binding:"max=64"`
	Search   string `form:"search" binding:"max=100"`
	Sort     string `form:"sort" binding:"omitempty,oneof=latest popular priority"`
}

// Filter converts the query into a ListFilter.
func (q ListResourcesQuery) Filter() ListFilter {
	return ListFilter{
		Page:     NewPage(atoi(q.Page), atoi(q.PerPage)),
		Type:     strings.TrimSpace(q.Type),
		Category: strings.TrimSpace(q.Category),
		Search:   strings.TrimSpace(q.Search),
		Sort:     q.Sort,
	}
}

// ListPostsQuery binds GET /community/posts query parameters. limit and per_page are aliases.
type ListPostsQuery struct {
	Page     string `form:"page"`
	Limit    string `form:"limit"`
	PerPage  string `form:"per_page"`
	Category string `form:"category" binding:"max=64"`
	Search   string `form:"search" binding:"max=100"`
}

// Filter converts the query into a ListFilter.
func (q ListPostsQuery) Filter() ListFilter {
	perPage := atoi(q.Limit)
	if perPage == 0 {
		perPage = atoi(q.PerPage)
	}
	return ListFilter{
		Page:     NewPage(atoi(q.Page), perPage),
		Category: strings.TrimSpace(q.Category),
		Search:   strings.TrimSpace(q.Search),
	}
}

// atoi parses a query number; anything unparsable becomes 0 so NewPage applies its default.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
