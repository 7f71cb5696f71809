package logic_test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"masto_bridge/logic"
	"masto_bridge/mocks"
	"masto_bridge/shared"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func setupFileFetcherTest(t *testing.T, handler http.HandlerFunc) (*httptest.Server, logic.IFileFetcher) {
	ctrl := gomock.NewController(t)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).Do(func(req *http.Request) {
		req.Header.Set("User-Agent", "MastoBridge/test")
	}).AnyTimes()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, logic.NewFileFetcher(&shared.Config{HttpTimeoutSec: 5}, mockUserAgent)
}

func TestFetchKeepsExtensionFromPath(t *testing.T) {
	srv, ff := setupFileFetcherTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "MastoBridge/test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("PNGDATA"))
	})

	fpath, err := ff.Fetch(context.Background(), srv.URL+"/files/cat.png")
	assert.Nil(t, err)
	defer os.Remove(fpath)
	assert.Equal(t, ".png", filepath.Ext(fpath))
	data, _ := os.ReadFile(fpath)
	assert.Equal(t, "PNGDATA", string(data))
}

func TestFetchExtensionFromDisposition(t *testing.T) {
	srv, ff := setupFileFetcherTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="voice.ogg"`)
		_, _ = w.Write([]byte("x"))
	})

	fpath, err := ff.Fetch(context.Background(), srv.URL+"/blob/1234")
	assert.Nil(t, err)
	defer os.Remove(fpath)
	assert.Equal(t, ".ogg", filepath.Ext(fpath))
}

func TestFetchExtensionFromContentType(t *testing.T) {
	srv, ff := setupFileFetcherTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/gif")
		_, _ = w.Write([]byte("GIF89a"))
	})

	fpath, err := ff.Fetch(context.Background(), srv.URL+"/blob/1234")
	assert.Nil(t, err)
	defer os.Remove(fpath)
	assert.Equal(t, ".gif", filepath.Ext(fpath))
}

func TestFetchFailsOnErrorStatus(t *testing.T) {
	srv, ff := setupFileFetcherTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	fpath, err := ff.Fetch(context.Background(), srv.URL+"/gone.jpg")
	assert.ErrorContains(t, err, "404")
	assert.Equal(t, "", fpath)
}
