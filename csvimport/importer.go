package csvimport

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/candidatos-info/diretorio/filestorage"
	"github.com/candidatos-info/diretorio/status"
)

// Importer reads a candidates CSV from a file storage and parses it,
// keeping track of where the import is.
type Importer struct {
	storage  filestorage.FileStorage
	encoding string

	mu     sync.Mutex
	status status.Status
	err    string
}

// NewImporter returns an idle importer reading from the given storage
// with the given encoding.
func NewImporter(storage filestorage.FileStorage, encoding string) *Importer {
	return &Importer{
		storage:  storage,
		encoding: encoding,
		status:   status.Idle,
	}
}

// Status returns the current import status and the last error message.
func (im *Importer) Status() (status.Status, string) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.status, im.err
}

func (im *Importer) setStatus(s status.Status) {
	im.mu.Lock()
	im.status = s
	im.mu.Unlock()
	log.Printf("import status [%s]\n", status.Text(s))
}

func (im *Importer) fail(err error) error {
	im.mu.Lock()
	im.status = status.Failed
	im.err = err.Error()
	im.mu.Unlock()
	log.Printf("import status [%s], error %v\n", status.Text(status.Failed), err)
	return err
}

// Import reads and parses the file on loc. Dropped rows are logged and
// counted on the result; only a read failure, an unknown encoding or a
// missing header abort the import.
func (im *Importer) Import(loc filestorage.Location) (*Result, error) {
	decode, err := Decoder(im.encoding)
	if err != nil {
		return nil, im.fail(err)
	}
	im.setStatus(status.Reading)
	b, err := im.storage.Read(loc.Bucket, loc.Name)
	if err != nil {
		return nil, im.fail(fmt.Errorf("failed to read candidates file [%s], error %v", loc, err))
	}
	im.setStatus(status.Parsing)
	res, err := Parse(decode(bytes.NewReader(b)))
	if err != nil {
		if err == ErrMissingHeader {
			return nil, im.fail(err)
		}
		return nil, im.fail(fmt.Errorf("failed to parse candidates file [%s], error %v", loc, err))
	}
	log.Printf("file [%s], lines [%d], accepted [%d], dropped [%d]\n", loc, res.Lines, res.Accepted(), len(res.Dropped))
	im.setStatus(status.Ready)
	return res, nil
}
