package suppliers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOrder_WhitelistsColumns(t *testing.T) {
	cases := []struct {
		field, dir string
		want       string
	}{
		{"", "", "name ASC"},
		{"name", "asc", "name ASC"},
		{"name", "desc", "name DESC"},
		{"company_name", "desc", "company_name DESC"},
		{"product_name", "", "product_name ASC"},
		{"contact_number", "asc", "contact_number ASC"},
		{"email", "desc", "email DESC"},
		{"created_at", "asc", "created_at ASC"},
		// Unknown fields fall back to the default sort instead of being
		// interpolated into the query.
		{"id; DROP TABLE suppliers", "asc", "name ASC"},
		{"unknown_field", "desc", "name DESC"},
		// Anything other than an explicit desc sorts ascending.
		{"name", "DESC", "name ASC"},
		{"name", "bogus", "name ASC"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sortOrder(tc.field, tc.dir), "field=%q dir=%q", tc.field, tc.dir)
	}
}
