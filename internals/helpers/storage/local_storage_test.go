package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// makeFileHeader monta um *multipart.FileHeader de verdade, igual ao que o
// Fiber entrega no handler.
func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	assert.Len(t, files, 1)
	return files[0]
}

func TestSaveStoresUnderYearMonthDir(t *testing.T) {
	st := New(t.TempDir(), 10)
	assert.NoError(t, st.EnsureBaseDir())

	data := []byte("conteúdo do trabalho")
	sf, err := st.Save(makeFileHeader(t, "Trabalho Final.PDF", "application/pdf", data))
	assert.NoError(t, err)

	assert.Equal(t, "Trabalho Final.PDF", sf.OriginalFilename)
	assert.Equal(t, int64(len(data)), sf.Size)
	assert.Equal(t, "application/pdf", sf.MimeType)

	// nome aleatório + extensão minúscula sanitizada
	assert.True(t, strings.HasSuffix(sf.StoredFilename, ".pdf"))
	assert.NotContains(t, sf.StoredFilename, "Trabalho")

	// subpasta ANO_MES
	now := time.Now()
	wantDir := fmt.Sprintf("%04d_%02d", now.Year(), int(now.Month()))
	assert.Equal(t, wantDir, filepath.Base(filepath.Dir(sf.Path)))

	got, err := os.ReadFile(sf.Path)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSaveRejectsTraversalNames(t *testing.T) {
	st := New(t.TempDir(), 10)

	for _, name := range []string{"../evil.txt", "a/b.txt", `a\b.txt`, "x..y.txt"} {
		_, err := st.Save(makeFileHeader(t, name, "", []byte("x")))
		assert.ErrorIs(t, err, ErrInvalidFilename, "filename %q", name)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	st := New(t.TempDir(), 1) // 1MB

	big := bytes.Repeat([]byte("z"), 1*1024*1024+1)
	_, err := st.Save(makeFileHeader(t, "grande.bin", "", big))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// nada foi gravado
	entries, err := os.ReadDir(st.BaseDir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveDefaultsMimeType(t *testing.T) {
	st := New(t.TempDir(), 10)

	sf, err := st.Save(makeFileHeader(t, "sem-mime.txt", "", []byte("oi")))
	assert.NoError(t, err)
	assert.Equal(t, "application/octet-stream", sf.MimeType)
}

func TestRemoveMissingFileIsNoop(t *testing.T) {
	st := New(t.TempDir(), 10)
	assert.NoError(t, st.Remove(filepath.Join(st.BaseDir, "nao-existe.bin")))
	assert.NoError(t, st.Remove(""))
}
