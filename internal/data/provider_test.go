package data

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticPrevClose(t *testing.T) {
	prov := Static{"SPY": 581.39}

	price, err := prov.PrevClose("SPY")
	if err != nil {
		t.Fatalf("prev close failed: %v", err)
	}
	if price != 581.39 {
		t.Fatalf("expected 581.39, got %.2f", price)
	}

	if _, err := prov.PrevClose("QQQ"); err == nil {
		t.Fatalf("expected an error for an unknown symbol")
	}
}

func TestMassivePrevClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/aggs/ticker/SPY/prev" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ticker":"SPY","results":[{"c":581.39,"t":1736899200000}],"status":"OK"}`))
	}))
	defer srv.Close()

	prov := NewMassiveProvider("test-key")
	prov.BaseURL = srv.URL

	price, err := prov.PrevClose("SPY")
	if err != nil {
		t.Fatalf("prev close failed: %v", err)
	}
	if price != 581.39 {
		t.Fatalf("expected 581.39, got %.2f", price)
	}
}

func TestMassivePrevCloseErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"empty results", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ticker":"SPY","results":[],"status":"OK"}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{`))
		}},
	}

	for _, test := range tests {
		srv := httptest.NewServer(test.handler)
		prov := NewMassiveProvider("test-key")
		prov.BaseURL = srv.URL
		if _, err := prov.PrevClose("SPY"); err == nil {
			t.Fatalf("%s: expected an error", test.name)
		}
		srv.Close()
	}
}
