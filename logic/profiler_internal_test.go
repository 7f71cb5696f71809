package logic

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveProfile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 5, 14, 7, 31, 0, time.Local)

	fpath, err := saveProfile(dir, now)
	assert.Nil(t, err)
	assert.Equal(t, "2024-03-05!14-07-31.txt", filepath.Base(fpath))
	data, _ := os.ReadFile(fpath)
	assert.True(t, strings.HasPrefix(string(data), "Goroutine count: "))
	assert.Contains(t, string(data), "TestSaveProfile")
}

func TestPurgeOldProfiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.txt")
	recent := filepath.Join(dir, "recent.txt")
	assert.Nil(t, os.WriteFile(old, []byte("x"), 0644))
	assert.Nil(t, os.WriteFile(recent, []byte("x"), 0644))
	tenDaysAgo := time.Now().AddDate(0, 0, -10)
	assert.Nil(t, os.Chtimes(old, tenDaysAgo, tenDaysAgo))

	assert.Nil(t, purgeOldProfiles(dir, time.Now().AddDate(0, 0, -7)))
	_, err := os.Stat(old)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(recent)
	assert.Nil(t, err)
}
