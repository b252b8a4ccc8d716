package filestorage

// FileStorage is the interface for the places where candidate files
// live: local disk, GCS buckets, S3 buckets and Google Drive folders.
type FileStorage interface {
	// Upload writes b as fileName inside bucket and returns
	// where the file can be found.
	Upload(b []byte, bucket, fileName string) (string, error)

	// Read returns the content of fileName inside bucket.
	Read(bucket, fileName string) ([]byte, error)
}
