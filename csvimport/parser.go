package csvimport

import (
	"errors"
	"io"
	"io/ioutil"
	"strings"

	"github.com/candidatos-info/diretorio/candidates"
)

// ErrMissingHeader is returned when the content has no header line.
var ErrMissingHeader = errors.New("candidates file has no header line")

// Result is the outcome of parsing one CSV file.
type Result struct {
	Header  []string
	Records []candidates.Record

	// Lines is the number of non blank data lines, the header excluded.
	Lines int

	// Dropped lists the line numbers (1-based, counting blank lines) of
	// data lines whose field count differs from the header.
	Dropped []int
}

// Accepted is the number of lines turned into records.
func (r *Result) Accepted() int {
	return len(r.Records)
}

// Parse reads comma separated content where the first non blank line is
// the header. Header names are split on commas without quoting and
// trimmed. Rows with a different number of fields than the header are
// dropped and reported on Result.Dropped rather than failing the import.
//
// Parsing is line based: a quoted field spanning more than one line is
// split at the line break and its pieces end up dropped or misaligned.
func Parse(r io.Reader) (*Result, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(b), "\n")
	res := &Result{Records: []candidates.Record{}}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if res.Header == nil {
			res.Header = parseHeader(line)
			continue
		}
		res.Lines++
		fields := ParseLine(line)
		if len(fields) != len(res.Header) {
			res.Dropped = append(res.Dropped, i+1)
			continue
		}
		record := make(candidates.Record, len(fields))
		for j, name := range res.Header {
			record[name] = fields[j]
		}
		res.Records = append(res.Records, record)
	}
	if res.Header == nil {
		return nil, ErrMissingHeader
	}
	return res, nil
}

func parseHeader(line string) []string {
	names := strings.Split(line, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return names
}

// ParseLine splits one CSV line into fields. A double quote toggles
// quoting, two double quotes inside a quoted field are a literal quote, and a comma
// outside quotes ends the field. The last field is always emitted, so a
// trailing comma yields a trailing empty field.
func ParseLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, field.String())
}
