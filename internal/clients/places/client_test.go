package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "top attractions in Paris" {
			t.Errorf("query=%q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key=%q", got)
		}
		w.Write([]byte(`{"results":[
			{"place_id":"p1","name":"Eiffel Tower","formatted_address":"Champ de Mars, Paris",
			 "photos":[{"photo_reference":"ref1"}],
			 "geometry":{"location":{"lat":48.8584,"lng":2.2945}}},
			{"place_id":"p2","name":"Louvre","formatted_address":"Rue de Rivoli, Paris",
			 "geometry":{"location":{"lat":48.8606,"lng":2.3376}}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", nil)
	c.BaseURL = srv.URL

	got := c.Search(context.Background(), "Paris")
	if len(got) != 2 {
		t.Fatalf("got %d places, want 2", len(got))
	}
	if got[0].ID != "p1" || got[0].Name != "Eiffel Tower" || got[0].PhotoReference != "ref1" {
		t.Fatalf("place=%+v", got[0])
	}
	if got[0].Location.Lat != 48.8584 {
		t.Fatalf("lat=%v", got[0].Location.Lat)
	}
	if got[1].PhotoReference != "" {
		t.Fatalf("expected no photo reference, got %q", got[1].PhotoReference)
	}
}

func TestClient_SearchFailureReturnsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", nil)
	c.BaseURL = srv.URL

	if got := c.Search(context.Background(), "Paris"); len(got) != 0 {
		t.Fatalf("got %d places, want 0", len(got))
	}
}

func TestClient_Geocode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("address"); got != "Paris" {
			t.Errorf("address=%q", got)
		}
		w.Write([]byte(`{"results":[{"geometry":{"location":{"lat":48.8566,"lng":2.3522}}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", nil)
	c.BaseURL = srv.URL

	loc := c.Geocode(context.Background(), "Paris")
	if loc == nil || loc.Lat != 48.8566 || loc.Lng != 2.3522 {
		t.Fatalf("loc=%+v", loc)
	}
}

func TestClient_GeocodeNoResults(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", nil)
	c.BaseURL = srv.URL

	if loc := c.Geocode(context.Background(), "nowhere at all"); loc != nil {
		t.Fatalf("loc=%+v, want nil", loc)
	}
}

func TestClient_PhotoURL(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, "test-key", nil)

	got := c.PhotoURL("ref1")
	for _, want := range []string{"/place/photo?", "photoreference=ref1", "maxwidth=400", "key=test-key"} {
		if !strings.Contains(got, want) {
			t.Fatalf("url=%q missing %q", got, want)
		}
	}
}
