package filestorage

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

type localStorage struct {
}

// NewLocalStorage returns a new local storage instance, where
// buckets are directories.
func NewLocalStorage() FileStorage {
	return &localStorage{}
}

// Upload writes the bytes on bucket/fileName, creating
// the bucket directory when needed
func (ls *localStorage) Upload(b []byte, bucket, fileName string) (string, error) {
	_, err := os.Stat(bucket) // checking if bucket exists
	if os.IsNotExist(err) {
		err := os.MkdirAll(bucket, 0755)
		if err != nil {
			return "", fmt.Errorf("failed to create directory [%s], error %v", bucket, err)
		}
	}
	name := filepath.Join(bucket, fileName)
	if err := ioutil.WriteFile(name, b, 0644); err != nil {
		return "", fmt.Errorf("failed to save file [%s] on path [%s], error %v", fileName, name, err)
	}
	return name, nil
}

func (ls *localStorage) Read(bucket, fileName string) ([]byte, error) {
	name := filepath.Join(bucket, fileName)
	b, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file [%s], error %v", name, err)
	}
	return b, nil
}
