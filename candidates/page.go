package candidates

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
	maxParsed    = 1<<31 - 1
)

// Meta describes the position of a page inside the full list.
type Meta struct {
	Total           int  `json:"total"`
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is one slice of candidates plus its metadata.
type Page struct {
	Data []Record `json:"data"`
	Meta Meta     `json:"meta"`
}

// ParsePage reads the page query parameter. Anything that does not start
// with a positive integer becomes page 1.
func ParsePage(raw string) int {
	p, ok := parseLeadingInt(raw)
	if !ok || p < 1 {
		return defaultPage
	}
	return p
}

// ParseLimit reads the limit query parameter. A missing or non numeric
// value becomes 50; numeric values are clamped to [1, 200].
func ParseLimit(raw string) int {
	l, ok := parseLeadingInt(raw)
	if !ok {
		return defaultLimit
	}
	return clamp(l, 1, maxLimit)
}

// Page returns the candidates of the given page. Out of range pages
// yield an empty data slice with correct metadata.
func (s *Store) Page(page, limit int) Page {
	if page < 1 {
		page = defaultPage
	}
	limit = clamp(limit, 1, maxLimit)
	total := s.Len()
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	data := []Record{}
	start := (page - 1) * limit
	if start < total {
		end := start + limit
		if end > total {
			end = total
		}
		data = append(data, s.records[start:end]...)
	}
	return Page{
		Data: data,
		Meta: Meta{
			Total:           total,
			Page:            page,
			Limit:           limit,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// parseLeadingInt parses the optional sign and the digits at the start of
// raw, ignoring whatever follows them ("3abc" is 3). Numbers too large
// for 32 bits saturate. The second return is false when raw has no
// leading digits.
func parseLeadingInt(raw string) (int, bool) {
	i := 0
	for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t') {
		i++
	}
	negative := false
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		negative = raw[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		if n < maxParsed {
			n = n*10 + int(raw[i]-'0')
		}
		if n > maxParsed {
			n = maxParsed
		}
		i++
	}
	if i == start {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}
