package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBearerHeaderAndDecode(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"c1","name":"Shoes"}]`))
	}))
	defer srv.Close()

	type category struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}

	c := New(srv.URL)
	var out []category
	err := c.Get(context.Background(), Credentials{Token: "tok-123"}, "/api/categories", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if len(out) != 1 || out[0].ID != "c1" || out[0].Name != "Shoes" {
		t.Fatalf("decoded %+v", out)
	}
}

func TestNonSuccessIsUniformFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"category in use"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Delete(context.Background(), Credentials{Token: "t"}, "/api/categories/c1")
	if err == nil {
		t.Fatal("expected error for 409")
	}
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if se.StatusCode != http.StatusConflict || se.Body != "category in use" {
		t.Fatalf("unexpected status error: %+v", se)
	}
}

func TestMutationSendsJSONBody(t *testing.T) {
	var gotCT string
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Put(context.Background(), Credentials{Token: "t"}, "/api/orders/o1/status", map[string]string{"status": "shipped"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCT != "application/json" {
		t.Fatalf("content-type = %q", gotCT)
	}
	if gotBody != `{"status":"shipped"}` {
		t.Fatalf("body = %q", gotBody)
	}
}
