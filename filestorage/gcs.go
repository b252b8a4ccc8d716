package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"cloud.google.com/go/storage"
)

const (
	timeout = time.Second * 50
)

// GSCClient is a client for google cloud storage
type GSCClient struct {
	client *storage.Client
}

// NewGCSClient returns an instance of GCS
func NewGCSClient() (*GSCClient, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client, error %v", err)
	}
	return &GSCClient{
		client: client,
	}, nil
}

// Upload copies the bytes to the object fileName of the bucket
func (gcs *GSCClient) Upload(b []byte, bucket, fileName string) (string, error) {
	r := bytes.NewReader(b)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	wc := gcs.client.Bucket(bucket).Object(fileName).NewWriter(ctx)
	if _, err := io.Copy(wc, r); err != nil {
		return "", fmt.Errorf("failed to copy content to GCS object (%s/%s), error %v", bucket, fileName, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close storage.Writer object (%s/%s), error %v", bucket, fileName, err)
	}
	return fmt.Sprintf("gs://%s/%s", bucket, fileName), nil
}

func (gcs *GSCClient) Read(bucket, fileName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	rc, err := gcs.client.Bucket(bucket).Object(fileName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open GCS object (%s/%s), error %v", bucket, fileName, err)
	}
	defer rc.Close()
	b, err := ioutil.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read GCS object (%s/%s), error %v", bucket, fileName, err)
	}
	return b, nil
}
