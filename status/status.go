package status

// Status is a custom type to represent the lifecycle of a candidates import
type Status int

const (
	// Idle means that no import was started yet
	Idle Status = 0

	// Reading means that the CSV file is being read from its storage
	Reading Status = 1

	// Parsing means that the CSV content is being parsed into records
	Parsing Status = 2

	// Ready means that records were imported and can be served
	Ready Status = 3

	// Failed means that the last import aborted
	Failed Status = 4
)

var (
	statusText = map[Status]string{
		Idle:    "No import started",
		Reading: "Reading candidates file",
		Parsing: "Parsing candidates file",
		Ready:   "Candidates ready to be served",
		Failed:  "Candidates import failed",
	}
)

// Text returns a text for a status. It returns the empty
// string if the status is unknown.
func Text(status Status) string {
	return statusText[status]
}
