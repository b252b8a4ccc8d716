package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/candidatos-info/diretorio/candidates"
)

// DefaultTimeout bounds one request to the remote candidates API.
const DefaultTimeout = 10 * time.Second

// HTTPError is returned for non 2xx answers of the remote API.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s answered with status %d", e.Method, e.URL, e.StatusCode)
}

// RemoteProvider reads candidates from a paginated candidates API.
type RemoteProvider struct {
	baseURL string
	client  *http.Client
}

// NewRemoteProvider returns a provider for the API at baseURL. A zero
// timeout means DefaultTimeout.
func NewRemoteProvider(baseURL string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: timeout,
			},
		},
	}
}

// Name of the provider
func (p *RemoteProvider) Name() string {
	return "remote"
}

// remotePage accepts both the flat shape ({data, total, page, ...}) and
// the one served by the api package ({data, meta}).
type remotePage struct {
	Data       []map[string]interface{} `json:"data"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"totalPages"`
	Meta       *candidates.Meta         `json:"meta"`
}

// Candidates makes a single GET request with the active filters.
func (p *RemoteProvider) Candidates(ctx context.Context, f Filter) ([]User, error) {
	u := p.baseURL + "/api/candidates"
	if q := f.Values().Encode(); q != "" {
		u += "?" + q
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to [%s], error %v", u, err)
	}
	req.Header.Set("Accept", "application/json")
	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request candidates from [%s], error %v", u, err)
	}
	defer res.Body.Close()
	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from [%s], error %v", u, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &HTTPError{Method: req.Method, URL: u, StatusCode: res.StatusCode}
	}
	var page remotePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode candidates from [%s], error %v", u, err)
	}
	records := make([]candidates.Record, 0, len(page.Data))
	for _, d := range page.Data {
		records = append(records, toRecord(d))
	}
	return Normalize(records), nil
}

// toRecord keeps JSON values as strings; null becomes "".
func toRecord(d map[string]interface{}) candidates.Record {
	r := make(candidates.Record, len(d))
	for k, v := range d {
		switch value := v.(type) {
		case nil:
			r[k] = ""
		case string:
			r[k] = value
		case float64:
			r[k] = strconv.FormatFloat(value, 'f', -1, 64)
		case bool:
			r[k] = strconv.FormatBool(value)
		default:
			b, _ := json.Marshal(value)
			r[k] = string(b)
		}
	}
	return r
}
