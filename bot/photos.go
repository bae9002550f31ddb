package bot

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// PhotoSaver downloads a Telegram photo by file id and returns the
// local path it was stored under.
type PhotoSaver interface {
	Save(fileID string) (string, error)
}

type fileResolver interface {
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

// FileStore keeps report photos on local disk under a single
// directory, one file per Telegram file id. The directory is purged
// nightly by the scheduler.
type FileStore struct {
	api   fileResolver
	token string
	dir   string
}

func NewFileStore(api fileResolver, token, dir string) *FileStore {
	return &FileStore{api: api, token: token, dir: dir}
}

func (s *FileStore) Save(fileID string) (string, error) {
	file, err := s.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileID, err)
	}

	resp, err := http.Get(file.Link(s.token))
	if err != nil {
		return "", fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download file %s: unexpected status %d", fileID, resp.StatusCode)
	}

	path := filepath.Join(s.dir, fileID+".jpg")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
