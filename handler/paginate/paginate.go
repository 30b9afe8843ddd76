package paginate

import (
	"net/url"
	"strconv"

	"github.com/profileapi/database/repository/pagination"
)

// NewFrom reads skip and limit from the query. Unparsable values fall back
// to the defaults.
func NewFrom(query url.Values) pagination.Window {
	skip := 0
	limit := pagination.MaxLimit

	if query.Get("skip") != "" {
		if value, err := strconv.Atoi(query.Get("skip")); err == nil {
			skip = value
		}
	}

	if query.Get("limit") != "" {
		if value, err := strconv.Atoi(query.Get("limit")); err == nil {
			limit = value
		}
	}

	return pagination.NewWindow(skip, limit)
}
