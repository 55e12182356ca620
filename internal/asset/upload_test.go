package asset

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req
}

func TestFromRequestWithoutField(t *testing.T) {
	req := multipartRequest(t, "thumbnail", "a.png", "image/png", []byte("x"))

	u, err := FromRequest(MemoryStager{}, req, "bigImage")

	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestMemoryStager(t *testing.T) {
	req := multipartRequest(t, "thumbnail", "a.png", "image/png", []byte("payload"))

	u, err := FromRequest(MemoryStager{}, req, "thumbnail")
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.Equal(t, "thumbnail", u.Field())
	assert.Equal(t, "a.png", u.Filename())
	assert.Equal(t, "image/png", u.ContentType())

	rc, err := u.Open()
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "payload", string(data))

	require.NoError(t, u.Cleanup())
	_, err = u.Open()
	assert.Error(t, err)
}

func TestDiskStagerCleansUpEveryStagedFile(t *testing.T) {
	dir := t.TempDir()
	req := multipartRequest(t, "image", "banner.png", "image/png", encodePNG(t, 50, 20))

	u, err := FromRequest(DiskStager{Dir: dir}, req, "image")
	require.NoError(t, err)

	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 1)

	require.NoError(t, Process(u))

	entries, _ = os.ReadDir(dir)
	assert.Len(t, entries, 1, "processing replaces the staged file")

	CleanupAll(u, nil)

	entries, _ = os.ReadDir(dir)
	assert.Empty(t, entries)
	assert.NoError(t, u.Cleanup(), "cleanup is idempotent")
}

func TestCreateStager(t *testing.T) {
	assert.IsType(t, MemoryStager{}, CreateStager(true, "ignored"))
	assert.Equal(t, DiskStager{Dir: "tmp"}, CreateStager(false, "tmp"))
}
