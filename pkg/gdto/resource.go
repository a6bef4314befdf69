package gdto

import (
	"strings"

	"github.com/savioruz/geoapi/pkg/failure"
)

// Resource declares how a listable resource may be sorted.
// Repositories map every entry of SortColumns to a storage expression.
type Resource struct {
	Name        string
	DefaultSort string
	SortColumns []string
}

var (
	Countries = Resource{
		Name:        "countries",
		DefaultSort: "Name",
		SortColumns: []string{"Id", "Name", "IsoCode"},
	}

	Cities = Resource{
		Name:        "cities",
		DefaultSort: "Name",
		SortColumns: []string{"Id", "Name", "Country", "Latitude", "Longitude"},
	}

	Users = Resource{
		Name:        "users",
		DefaultSort: "UserName",
		SortColumns: []string{"Id", "UserName", "Email"},
	}
)

// Column returns the declared spelling of name, matched case-insensitively.
func (r Resource) Column(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, col := range r.SortColumns {
		if strings.EqualFold(col, name) {
			return col, true
		}
	}

	return "", false
}

const (
	FieldPage       = "Page"
	FieldPageSize   = "PageSize"
	FieldSortColumn = "SortColumn"
	FieldSortOrder  = "SortOrder"
)

// ValidatePaging checks page, page size, sort order and sort column independently and
// reports every violation.
func ValidatePaging(r PagedRequest, res Resource) error {
	var errs []error

	if r.Page != nil && *r.Page < DefaultPage {
		errs = append(errs, failure.Validation(FieldPage, "Page must be greater than or equal to 1."))
	}

	if r.PageSize != nil && (*r.PageSize < 1 || *r.PageSize > MaxPageSize) {
		errs = append(errs, failure.Validation(FieldPageSize, "PageSize must be between 1 and 100."))
	}

	if r.SortOrder != "" && !strings.EqualFold(r.SortOrder, SortAsc) && !strings.EqualFold(r.SortOrder, SortDesc) {
		errs = append(errs, failure.Validation(FieldSortOrder, "SortOrder must be 'ASC' or 'DESC'."))
	}

	if r.SortColumn != "" {
		if _, ok := res.Column(r.SortColumn); !ok {
			errs = append(errs, failure.Validation(FieldSortColumn, "SortColumn must be one of: "+strings.Join(res.SortColumns, ", ")))
		}
	}

	return failure.Join(errs...)
}
