package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched/internal/adapter/sqlite"
	"sched/internal/config"
)

func TestQueryFromArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"lw"}, "lw"},
		{[]string{"lakeshore", "west"}, "lakeshore west"},
		{[]string{"richmond", "hill"}, "richmond hill"},
	}

	for _, tt := range tests {
		if got := queryFromArgs(tt.args); got != tt.want {
			t.Errorf("queryFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRootCommand_NoArgsPrintsUsage(t *testing.T) {
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err, "zero arguments exits successfully")
	assert.Contains(t, buf.String(), "Usage:")
}

func TestHistoryCommand_EmptyHistory(t *testing.T) {
	t.Setenv("SCHED_DB", filepath.Join(t.TempDir(), "history.db"))

	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"history"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No schedules fetched yet.")
}

func TestRunFetch_EndToEnd(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	pdfContent := []byte("%PDF-1.4 lakeshore west timetable")
	var pdfServed bool

	mux := http.NewServeMux()
	mux.HandleFunc("/schedules", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `
			<html><body>
				<table class="content-page-table">
					<tbody>
						<tr><td><strong>Lakeshore West</strong></td><td><a href="/files/01-18.pdf">01-18</a></td></tr>
						<tr><td><strong>Milton</strong></td><td><a href="/files/21.pdf">21</a></td></tr>
					</tbody>
				</table>
			</body></html>
		`)
	})
	mux.HandleFunc("/files/01-18.pdf", func(w http.ResponseWriter, r *http.Request) {
		pdfServed = true
		_, _ = w.Write(pdfContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		IndexURL:    srv.URL + "/schedules",
		DBPath:      filepath.Join(tmp, "history.db"),
		HTTPTimeout: 5 * time.Second,
	}

	err := runFetch(context.Background(), cfg, "lw", true)
	require.NoError(t, err)
	require.True(t, pdfServed, "the resolved PDF must be downloaded")

	// The owning scope ended, so the temp file is gone.
	_, statErr := os.Stat(filepath.Join(os.TempDir(), "sched", pdfName))
	assert.True(t, os.IsNotExist(statErr), "temp file must be removed after the fetch")

	// The lookup landed in history.
	repo, err := sqlite.New(cfg.DBPath)
	require.NoError(t, err)
	defer repo.Close()

	lookups, err := repo.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	assert.Equal(t, "lw", lookups[0].Query)
	assert.Equal(t, "01-18", lookups[0].Code)
	assert.Equal(t, srv.URL+"/files/01-18.pdf", lookups[0].URL)
}

func TestRunFetch_NotFoundCleansUp(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `
			<table class="content-page-table"><tbody>
				<tr><td><strong>Milton</strong></td><td><a href="/files/21.pdf">21</a></td></tr>
			</tbody></table>
		`)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		IndexURL:    srv.URL,
		DBPath:      filepath.Join(tmp, "history.db"),
		HTTPTimeout: 5 * time.Second,
	}

	err := runFetch(context.Background(), cfg, "nonexistent", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")

	_, statErr := os.Stat(filepath.Join(os.TempDir(), "sched", pdfName))
	assert.True(t, os.IsNotExist(statErr), "temp file must be removed on error paths too")
}
