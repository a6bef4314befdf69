package gdto

import (
	"strings"

	"github.com/savioruz/geoapi/pkg/helper"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PagedRequest is embedded by every list request. Nil page values mean "not supplied".
type PagedRequest struct {
	Page       *int   `json:"page" query:"page" example:"1"`
	PageSize   *int   `json:"pageSize" query:"pageSize" example:"10"`
	SortColumn string `json:"sortColumn" query:"sortColumn" example:"Name"`
	SortOrder  string `json:"sortOrder" query:"sortOrder" example:"ASC" enums:"ASC,DESC"`
}

// Paging is a normalized PagedRequest.
type Paging struct {
	Page       int
	PageSize   int
	SortColumn string
	SortOrder  string
}

// Normalize applies defaults and the page size cap. An unknown sort column falls back to the
// resource default, any sort order other than DESC becomes ASC.
func (r PagedRequest) Normalize(res Resource) Paging {
	p := Paging{
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
		SortColumn: res.DefaultSort,
		SortOrder:  SortAsc,
	}

	if r.Page != nil {
		p.Page = *r.Page
	}

	if r.PageSize != nil {
		p.PageSize = min(*r.PageSize, MaxPageSize)
	}

	if col, ok := res.Column(r.SortColumn); ok {
		p.SortColumn = col
	}

	if strings.EqualFold(r.SortOrder, SortDesc) {
		p.SortOrder = SortDesc
	}

	return p
}

func (p Paging) Offset() int {
	return helper.CalculateOffset(p.Page, p.PageSize)
}

func (p Paging) Descending() bool {
	return p.SortOrder == SortDesc
}

type PagedList[T any] struct {
	Items           []T  `json:"items"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

func NewPagedList[T any](items []T, p Paging, totalCount int) PagedList[T] {
	if items == nil {
		items = []T{}
	}

	return PagedList[T]{
		Items:           items,
		Page:            p.Page,
		PageSize:        p.PageSize,
		TotalCount:      totalCount,
		TotalPages:      helper.CalculateTotalPages(totalCount, p.PageSize),
		HasNextPage:     totalCount > 0 && p.Page < helper.CalculateTotalPages(totalCount, p.PageSize),
		HasPreviousPage: p.Page > 1,
	}
}

// MapPagedList converts the items of a page and keeps its metadata.
func MapPagedList[T, U any](l PagedList[T], f func(T) U) PagedList[U] {
	items := make([]U, len(l.Items))
	for i, item := range l.Items {
		items[i] = f(item)
	}

	return PagedList[U]{
		Items:           items,
		Page:            l.Page,
		PageSize:        l.PageSize,
		TotalCount:      l.TotalCount,
		TotalPages:      l.TotalPages,
		HasNextPage:     l.HasNextPage,
		HasPreviousPage: l.HasPreviousPage,
	}
}
