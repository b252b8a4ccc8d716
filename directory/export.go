package directory

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes the users as CSV, one column per User field.
func ExportCSV(users []User) ([]byte, error) {
	b, err := gocsv.MarshalBytes(&users)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal [%d] candidates as csv, error %v", len(users), err)
	}
	return b, nil
}
