package excel

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phenrril/logihub/internal/domain"
)

const snapshotSuffix = "통합데이터.xlsx"

// LatestSnapshot walks dir recursively and returns the newest merged crawler
// export by modification time.
func LatestSnapshot(dir string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrFileNotFound
		}
		return "", err
	}

	var newest string
	var newestMod time.Time
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), snapshotSuffix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = path
			newestMod = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if newest == "" {
		return "", domain.ErrFileNotFound
	}
	return newest, nil
}
