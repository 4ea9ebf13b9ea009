package gsaf

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = "Case Number,Time\n2024.01.01,14h00\n"

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(fixtureCSV))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "raw", "gsaf.csv")
	c := NewClient(5*time.Second, slog.Default())

	n, err := c.Download(context.Background(), srv.URL, dest)
	require.NoError(t, err)
	assert.Equal(t, int64(len(fixtureCSV)), n)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, fixtureCSV, string(got))
}

func TestDownload_ReplacesExistingFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(fixtureCSV))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "gsaf.csv")
	require.NoError(t, os.WriteFile(dest, []byte("stale contents"), 0o644))

	c := NewClient(5*time.Second, slog.Default())
	_, err := c.Download(context.Background(), srv.URL, dest)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, fixtureCSV, string(got))
}

func TestDownload_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone fishing", http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "gsaf.csv")
	c := NewClient(5*time.Second, slog.Default())

	_, err := c.Download(context.Background(), srv.URL, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.NoFileExists(t, dest)
}

func TestDownload_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(5*time.Second, slog.Default())
	_, err := c.Download(ctx, srv.URL, filepath.Join(t.TempDir(), "gsaf.csv"))
	require.Error(t, err)
}

func TestDownload_NetworkError(t *testing.T) {
	c := NewClient(time.Second, slog.Default())
	_, err := c.Download(context.Background(), "http://127.0.0.1:1/nope", filepath.Join(t.TempDir(), "gsaf.csv"))
	require.Error(t, err)
}
