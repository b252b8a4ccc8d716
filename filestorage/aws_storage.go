package filestorage

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const (
	defaultRegion = "me-south-1"
	acl           = "public-read"
)

// S3Client is a client for AWS S3 service
type S3Client struct {
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
}

// NewAWSClient returns a client with implementation for S3. An empty
// region means me-south-1.
func NewAWSClient(region, accessKeyID, secretAccessKey string) (FileStorage, error) {
	if accessKeyID == "" {
		return nil, fmt.Errorf("missing ACCESS_KEY_ID environment variable")
	}
	if secretAccessKey == "" {
		return nil, fmt.Errorf("missing SECRET_ACCESS_KEY environment variable")
	}
	if region == "" {
		region = defaultRegion
	}
	config := aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session on region [%s], error %v", region, err)
	}
	return &S3Client{
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
	}, nil
}

// Upload sends the bytes to the bucket with key fileName
func (awsClient *S3Client) Upload(b []byte, bucket, fileName string) (string, error) {
	up, err := awsClient.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucket),
		ACL:    aws.String(acl),
		Key:    aws.String(fileName),
		Body:   bytes.NewReader(b),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send file [%s] to bucket [%s], error %v", fileName, bucket, err)
	}
	return up.Location, nil
}

func (awsClient *S3Client) Read(bucket, fileName string) ([]byte, error) {
	buf := aws.NewWriteAtBuffer([]byte{})
	_, err := awsClient.downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download file [%s] from bucket [%s], error %v", fileName, bucket, err)
	}
	return buf.Bytes(), nil
}
