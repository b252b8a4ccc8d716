package filestorage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

type googleDrive struct {
	service *drive.Service
}

// NewGoogleDriveStorage returns a new client to execute file operations
// with Google Drive.
func NewGoogleDriveStorage(credentialsFile, oauthToken string) (FileStorage, error) {
	if credentialsFile == "" || oauthToken == "" {
		return nil, fmt.Errorf("missing DRIVE_CREDENTIALS or DRIVE_TOKEN environment variables")
	}
	b, err := ioutil.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file [%s], error %v", credentialsFile, err)
	}
	config, err := google.ConfigFromJSON(b, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to process config from file [%s], error %v", credentialsFile, err)
	}
	f, err := os.Open(oauthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open oauth token file [%s], error %v", oauthToken, err)
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err = json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode OAuth token, error %v", err)
	}
	client := config.Client(context.Background(), tok)
	service, err := drive.New(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Drive service, error %v", err)
	}
	return &googleDrive{
		service: service,
	}, nil
}

// the bucket argument for Google Drive is the folder ID.
func (gd *googleDrive) Upload(b []byte, bucket, fileName string) (string, error) {
	f := &drive.File{
		MimeType: "application/octet-stream",
		Name:     fileName,
		Parents:  []string{bucket},
	}
	created, err := gd.service.Files.Create(f).Media(bytes.NewReader(b)).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create file [%s] on folder [%s], error %v", fileName, bucket, err)
	}
	return created.Id, nil
}

// Read looks for a non trashed file called fileName inside the folder
// and downloads the first match.
func (gd *googleDrive) Read(bucket, fileName string) ([]byte, error) {
	q := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", escapeQuery(fileName), escapeQuery(bucket))
	list, err := gd.service.Files.List().Q(q).Fields("files(id, name)").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to look for file [%s] on folder [%s], error %v", fileName, bucket, err)
	}
	if len(list.Files) == 0 {
		return nil, fmt.Errorf("file [%s] not found on folder [%s]", fileName, bucket)
	}
	res, err := gd.service.Files.Get(list.Files[0].Id).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file [%s], error %v", fileName, err)
	}
	defer res.Body.Close()
	return ioutil.ReadAll(res.Body)
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `'`, `\'`)
}
