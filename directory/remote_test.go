package directory

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRemoteProvider(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/candidates" {
			t.Errorf("expected path /api/candidates, got %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"data":[{"id":7,"name":"Ali","governorate":"Atlantis","gender":"Female","party":null}],"total":1,"page":1,"limit":50,"totalPages":1}`)
	}))
	defer ts.Close()
	p := NewRemoteProvider(ts.URL+"/", time.Second)
	users, err := p.Candidates(context.Background(), Filter{Governorate: "All", Gender: "Female", Page: 1})
	if err != nil {
		t.Fatalf("expected err nil, got %v", err)
	}
	if gotQuery != "gender=Female&page=1" {
		t.Errorf("expected query [gender=Female&page=1], got [%s]", gotQuery)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	u := users[0]
	if u.ID != "7" || u.Governorate != "Baghdad" || u.Gender != Female || u.Party != "Independent" {
		t.Errorf("expected normalized remote user, got %+v", u)
	}
}

func TestRemoteProviderMetaShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"name":"Sara"},{"name":"Ali"}],"meta":{"total":2,"page":1,"limit":50,"totalPages":1,"hasNextPage":false,"hasPreviousPage":false}}`)
	}))
	defer ts.Close()
	users, err := NewRemoteProvider(ts.URL, 0).Candidates(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("expected err nil, got %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestRemoteProviderErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("party") == "broken" {
			fmt.Fprint(w, "not json")
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()
	p := NewRemoteProvider(ts.URL, time.Second)
	_, err := p.Candidates(context.Background(), Filter{})
	httpErr, ok := err.(*HTTPError)
	if !ok {
		t.Fatalf("expected *HTTPError, got %T (%v)", err, err)
	}
	if httpErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", httpErr.StatusCode)
	}
	if _, err := p.Candidates(context.Background(), Filter{Party: "broken"}); err == nil {
		t.Errorf("expected decode error for invalid body")
	}
}

func TestRemoteProviderTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer ts.Close()
	if _, err := NewRemoteProvider(ts.URL, 50*time.Millisecond).Candidates(context.Background(), Filter{}); err == nil {
		t.Errorf("expected timeout error")
	}
}
