package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nurpe/contract-manager/internal/config"
)

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), config.StorageConfig{Region: "us-east-1"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestPutUsesPathStyleEndpoint(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store, err := New(context.Background(), config.StorageConfig{
		Bucket:    "contracts",
		Endpoint:  server.URL,
		Region:    "us-east-1",
		AccessKey: "local",
		SecretKey: "local",
	})
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	body := []byte("%PDF-1.7 signed")
	if err := store.Put(context.Background(), "contracts/1/signed/a.pdf", "application/pdf", body); err != nil {
		t.Fatalf("put: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/contracts/contracts/1/signed/a.pdf" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotContentType != "application/pdf" {
		t.Fatalf("unexpected content type %s", gotContentType)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("unexpected body %q", gotBody)
	}
}

func TestDeleteRemovesObject(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store, err := New(context.Background(), config.StorageConfig{
		Bucket:    "contracts",
		Endpoint:  server.URL,
		Region:    "us-east-1",
		AccessKey: "local",
		SecretKey: "local",
	})
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	if err := store.Delete(context.Background(), "contracts/1/signed/a.pdf"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("expected DELETE, got %s", gotMethod)
	}
	if gotPath != "/contracts/contracts/1/signed/a.pdf" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}
