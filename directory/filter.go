package directory

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/candidatos-info/diretorio/slug"
)

const maxLimit = 200

// Filter narrows a directory query. Blank values and "All" mean no filter.
type Filter struct {
	Governorate string
	Party       string
	Gender      string
	Search      string
	Page        int
	Limit       int
}

// Active reports if a filter value restricts the query.
func Active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "All")
}

// Values returns the query parameters for the active filters.
func (f Filter) Values() url.Values {
	v := url.Values{}
	for _, p := range []struct{ key, value string }{
		{"governorate", f.Governorate},
		{"party", f.Party},
		{"gender", f.Gender},
		{"search", f.Search},
	} {
		if Active(p.value) {
			v.Set(p.key, strings.TrimSpace(p.value))
		}
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// Apply keeps the users matching f and returns the requested page. The
// governorate and party filters are compared by slug, so plain names
// match the slugs stored on users.
func (f Filter) Apply(users []User) []User {
	matched := []User{}
	for _, u := range users {
		if f.matches(u) {
			matched = append(matched, u)
		}
	}
	if f.Limit <= 0 {
		return matched
	}
	limit := f.Limit
	if limit > maxLimit {
		limit = maxLimit
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return []User{}
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end]
}

func (f Filter) matches(u User) bool {
	if Active(f.Governorate) && u.GovernorateSlug != slug.Make(f.Governorate) {
		return false
	}
	if Active(f.Party) && u.PartySlug != slug.Make(f.Party) {
		return false
	}
	if Active(f.Gender) && !strings.EqualFold(u.Gender, strings.TrimSpace(f.Gender)) {
		return false
	}
	if Active(f.Search) {
		q := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(u.Name), q) && !strings.Contains(strings.ToLower(u.Party), q) {
			return false
		}
	}
	return true
}
