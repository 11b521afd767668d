package oddsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nmakarov/pickbot/internal/pkg/config"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.OddsAPIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Regions: "us",
		Timeout: config.Duration(5 * time.Second),
	})
}

func TestFetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sports/baseball_mlb/odds" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" {
			t.Errorf("apiKey = %q", q.Get("apiKey"))
		}
		if q.Get("markets") != "h2h" || q.Get("oddsFormat") != "american" {
			t.Errorf("markets=%q oddsFormat=%q", q.Get("markets"), q.Get("oddsFormat"))
		}
		if q.Get("commenceTimeFrom") != "2025-06-01T00:00:00Z" ||
			q.Get("commenceTimeTo") != "2025-06-01T23:59:59Z" {
			t.Errorf("day window: from=%q to=%q", q.Get("commenceTimeFrom"), q.Get("commenceTimeTo"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "abc123",
				"sport_key": "baseball_mlb",
				"commence_time": "2025-06-01T17:05:00Z",
				"home_team": "Yankees",
				"away_team": "Red Sox",
				"bookmakers": [
					{
						"key": "book_a",
						"title": "Book A",
						"markets": [
							{"key": "h2h", "outcomes": [
								{"name": "Yankees", "price": -150},
								{"name": "Red Sox", "price": 130}
							]}
						]
					}
				]
			}
		]`))
	}))
	defer srv.Close()

	events, err := testClient(srv.URL).FetchEvents(context.Background(), "baseball_mlb", "2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.HomeTeam != "Yankees" || e.AwayTeam != "Red Sox" {
		t.Errorf("teams: %s vs %s", e.HomeTeam, e.AwayTeam)
	}
	if len(e.Bookmakers) != 1 || len(e.Bookmakers[0].Markets) != 1 {
		t.Fatalf("bookmakers/markets not decoded: %+v", e.Bookmakers)
	}
	if got := e.Bookmakers[0].Markets[0].Outcomes[0].Price; got != -150 {
		t.Errorf("price = %v, want -150", got)
	}
}

func TestFetchEventsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchEvents(context.Background(), "baseball_mlb", "2025-06-01")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestFetchEventsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchEvents(context.Background(), "baseball_mlb", "2025-06-01")
	if err == nil {
		t.Fatal("expected decode error")
	}
}
