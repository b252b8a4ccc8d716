package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Local is the scheme for files on local disk (plain paths or file://)
	Local = "file"

	// GCS is the scheme for Google Cloud Storage (gs://bucket/object)
	GCS = "gs"

	// S3 is the scheme for AWS S3 (s3://bucket/key)
	S3 = "s3"

	// Drive is the scheme for Google Drive (drive://folderID/fileName)
	Drive = "drive"
)

// Location points to one file inside a storage.
type Location struct {
	Scheme string
	Bucket string
	Name   string
}

// String returns the location in the same format accepted by ParseLocation.
func (l Location) String() string {
	if l.Scheme == Local {
		return filepath.Join(l.Bucket, l.Name)
	}
	return fmt.Sprintf("%s://%s/%s", l.Scheme, l.Bucket, l.Name)
}

// ParseLocation splits a storage URI into scheme, bucket and file name.
// Values without a scheme are local paths, where the bucket is the
// directory of the file.
func ParseLocation(uri string) (Location, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return Location{}, fmt.Errorf("empty storage location")
	}
	sep := strings.Index(uri, "://")
	if sep < 0 {
		return localLocation(uri), nil
	}
	scheme, rest := uri[:sep], uri[sep+3:]
	switch scheme {
	case Local:
		return localLocation(rest), nil
	case GCS, S3, Drive:
		slash := strings.Index(rest, "/")
		if slash <= 0 || slash == len(rest)-1 {
			return Location{}, fmt.Errorf("storage location [%s] must have the format %s://bucket/name", uri, scheme)
		}
		return Location{Scheme: scheme, Bucket: rest[:slash], Name: rest[slash+1:]}, nil
	default:
		return Location{}, fmt.Errorf("storage scheme [%s] not supported", scheme)
	}
}

func localLocation(path string) Location {
	return Location{
		Scheme: Local,
		Bucket: filepath.Dir(path),
		Name:   filepath.Base(path),
	}
}

// ForLocation returns the file storage able to handle the given location.
// Credentials come from the environment: ACCESS_KEY_ID, SECRET_ACCESS_KEY
// and AWS_REGION for S3, DRIVE_CREDENTIALS and DRIVE_TOKEN for Google
// Drive. GCS uses the application default credentials.
func ForLocation(loc Location) (FileStorage, error) {
	switch loc.Scheme {
	case Local:
		return NewLocalStorage(), nil
	case GCS:
		return NewGCSClient()
	case S3:
		return NewAWSClient(os.Getenv("AWS_REGION"), os.Getenv("ACCESS_KEY_ID"), os.Getenv("SECRET_ACCESS_KEY"))
	case Drive:
		return NewGoogleDriveStorage(os.Getenv("DRIVE_CREDENTIALS"), os.Getenv("DRIVE_TOKEN"))
	default:
		return nil, fmt.Errorf("storage scheme [%s] not supported", loc.Scheme)
	}
}
