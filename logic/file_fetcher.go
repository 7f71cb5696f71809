package logic

import (
	"context"
	"fmt"
	"io"
	"masto_bridge/shared"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_file_fetcher.go -package mocks masto_bridge/logic IFileFetcher

const maxFetchedFileBytes = 40 * 1024 * 1024

// IFileFetcher downloads chat attachments to temporary files so they can be uploaded to Mastodon.
// The caller removes the returned file.
type IFileFetcher interface {
	Fetch(ctx context.Context, fileUrl string) (filePath string, err error)
}

type fileFetcher struct {
	cfg       *shared.Config
	userAgent shared.IUserAgent
}

func NewFileFetcher(cfg *shared.Config, userAgent shared.IUserAgent) IFileFetcher {
	return &fileFetcher{cfg, userAgent}
}

func (ff *fileFetcher) Fetch(ctx context.Context, fileUrl string) (filePath string, err error) {

	var req *http.Request
	if req, err = http.NewRequestWithContext(ctx, "GET", fileUrl, nil); err != nil {
		return "", err
	}
	ff.userAgent.AddUserAgent(req)

	client := http.Client{}
	client.Timeout = time.Second * time.Duration(ff.cfg.HttpTimeoutSec)
	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request for %s failed with status %v", fileUrl, resp.StatusCode)
	}

	var file *os.File
	if file, err = os.CreateTemp("", "attachment-*"+getExtension(resp)); err != nil {
		return "", err
	}
	defer file.Close()
	if _, err = io.Copy(file, io.LimitReader(resp.Body, maxFetchedFileBytes)); err != nil {
		_ = os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}

// Mastodon sniffs media types from the file name, so keep a sensible extension.
func getExtension(resp *http.Response) string {
	var fname string
	if disp := resp.Header.Get("Content-Disposition"); disp != "" {
		if _, params, err := mime.ParseMediaType(disp); err == nil {
			fname = params["filename"]
		}
	}
	if fname == "" && resp.Request != nil {
		fname = path.Base(resp.Request.URL.Path)
	}
	if ext := path.Ext(fname); ext != "" {
		return ext
	}
	ctype := strings.TrimSpace(strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	if exts, err := mime.ExtensionsByType(ctype); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
