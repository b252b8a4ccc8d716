package candidates

import "strings"

const unknown = "Unknown"

// Stats aggregates the whole candidates list by gender and governorate.
type Stats struct {
	Total        int            `json:"total"`
	Gender       map[string]int `json:"gender"`
	Governorates map[string]int `json:"governorates"`
}

// Stats counts every record once. Missing or blank values are counted
// under "Unknown".
func (s *Store) Stats() Stats {
	stats := Stats{
		Total:        s.Len(),
		Gender:       make(map[string]int),
		Governorates: make(map[string]int),
	}
	if s == nil {
		return stats
	}
	for _, r := range s.records {
		stats.Gender[bucket(r["gender"])]++
		stats.Governorates[bucket(r["governorate"])]++
	}
	return stats
}

func bucket(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return unknown
	}
	return v
}
