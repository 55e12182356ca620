package asset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Upload is a staged multipart file. Processing replaces its content in place
// and Cleanup releases whatever the stager allocated for it.
type Upload interface {
	Field() string
	Filename() string
	ContentType() string
	Open() (io.ReadCloser, error)
	Replace(data []byte, filename, contentType string) error
	Cleanup() error
}

// Stager captures incoming files either in memory or in a temp directory.
type Stager interface {
	Stage(field string, fh *multipart.FileHeader) (Upload, error)
}

func CreateStager(inMemory bool, dir string) Stager {
	if inMemory {
		return MemoryStager{}
	}

	return DiskStager{Dir: dir}
}

// FromRequest stages the first file sent under field. A request without the
// field yields a nil Upload and no error.
func FromRequest(s Stager, r *http.Request, field string) (Upload, error) {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, nil
	}

	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, nil
	}

	return s.Stage(field, files[0])
}

// CleanupAll is meant to be deferred by handlers; nil uploads are skipped.
func CleanupAll(uploads ...Upload) {
	for _, u := range uploads {
		if u != nil {
			u.Cleanup()
		}
	}
}

type fileInfo struct {
	field       string
	filename    string
	contentType string
}

func (f *fileInfo) Field() string       { return f.field }
func (f *fileInfo) Filename() string    { return f.filename }
func (f *fileInfo) ContentType() string { return f.contentType }

type MemoryStager struct{}

func (MemoryStager) Stage(field string, fh *multipart.FileHeader) (Upload, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", field, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", field, err)
	}

	return NewMemoryUpload(field, fh.Filename, fh.Header.Get("Content-Type"), data), nil
}

type memoryUpload struct {
	fileInfo
	mu   sync.Mutex
	data []byte
}

func NewMemoryUpload(field, filename, contentType string, data []byte) Upload {
	return &memoryUpload{
		fileInfo: fileInfo{field: field, filename: filename, contentType: contentType},
		data:     data,
	}
}

func (m *memoryUpload) Open() (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, errors.New("upload already released")
	}

	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *memoryUpload) Replace(data []byte, filename, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data
	m.filename = filename
	m.contentType = contentType
	return nil
}

func (m *memoryUpload) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	return nil
}

type DiskStager struct {
	Dir string
}

func (s DiskStager) Stage(field string, fh *multipart.FileHeader) (Upload, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", field, err)
	}
	defer src.Close()

	path := tempPath(s.Dir, fh.Filename)
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing temp file: %w", err)
	}

	return &diskUpload{
		fileInfo: fileInfo{field: field, filename: fh.Filename, contentType: fh.Header.Get("Content-Type")},
		dir:      s.Dir,
		path:     path,
	}, nil
}

type diskUpload struct {
	fileInfo
	mu   sync.Mutex
	dir  string
	path string
}

func (d *diskUpload) Open() (io.ReadCloser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return os.Open(d.path)
}

func (d *diskUpload) Replace(data []byte, filename, contentType string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	path := tempPath(d.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing processed file: %w", err)
	}

	os.Remove(d.path)
	d.path = path
	d.filename = filename
	d.contentType = contentType
	return nil
}

func (d *diskUpload) Cleanup() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := os.Remove(d.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func tempPath(dir, filename string) string {
	return filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(filename)))
}
