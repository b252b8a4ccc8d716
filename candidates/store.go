package candidates

// Record is a raw candidate row, from the CSV file or from the remote
// candidates API, keyed by column name.
type Record map[string]string

// Store holds the imported candidates. It is built once, after the
// import finishes, and never changes afterwards, so concurrent readers
// need no locking.
type Store struct {
	records []Record
	ready   bool
}

// NewStore returns a ready store over a copy of the given records.
func NewStore(records []Record) *Store {
	r := make([]Record, len(records))
	copy(r, records)
	return &Store{
		records: r,
		ready:   true,
	}
}

// Len returns the number of candidates on store.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Ready reports if the store was built from a finished import. A nil or
// zero store is not ready.
func (s *Store) Ready() bool {
	return s != nil && s.ready
}
