package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Client writes uploaded attachments into a single local directory and
// removes them again by filename.
type Client struct {
	dir string
}

// StoredFile describes a file after it has been written to disk.
type StoredFile struct {
	Filename string
	Mime     string
}

func NewClient(dir string) (*Client, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Client{dir: dir}, nil
}

// Dir returns the directory files are stored under, for static serving.
func (c *Client) Dir() string {
	return c.dir
}

// Save writes the reader's content under a collision-resistant name of the
// form <unix-millis>_<random><ext>, preserving originalName's extension.
func (c *Client) Save(src io.Reader, originalName, contentType string) (*StoredFile, error) {
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(c.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &StoredFile{Filename: name, Mime: contentType}, nil
}

// SaveFile stores an uploaded multipart file.
func (c *Client) SaveFile(file *multipart.FileHeader) (*StoredFile, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	return c.Save(src, file.Filename, file.Header.Get("Content-Type"))
}

// DeleteFile removes a stored file. A missing file is not an error.
func (c *Client) DeleteFile(filename string) error {
	err := os.Remove(filepath.Join(c.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
