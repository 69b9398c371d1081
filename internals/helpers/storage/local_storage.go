// file: internals/helpers/storage/local_storage.go
//
// Armazenamento local de uploads: nome aleatório (uuid) + extensão
// sanitizada, organizado em subpastas ANO_MES dentro do diretório base.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("arquivo excede o tamanho máximo permitido")
	ErrInvalidFilename = errors.New("nome de arquivo inválido")
)

var extSanitizer = regexp.MustCompile(`[^a-z0-9.]`)

type StoredFile struct {
	OriginalFilename string
	StoredFilename   string
	Path             string
	Size             int64
	MimeType         string
}

type LocalStorage struct {
	BaseDir  string
	MaxBytes int64
}

func New(baseDir string, maxUploadMB int) *LocalStorage {
	return &LocalStorage{
		BaseDir:  baseDir,
		MaxBytes: int64(maxUploadMB) * 1024 * 1024,
	}
}

// EnsureBaseDir cria o diretório base de uploads se não existir.
func (s *LocalStorage) EnsureBaseDir() error {
	return os.MkdirAll(s.BaseDir, 0o755)
}

// Save valida e persiste o arquivo multipart em disco.
// - nome original com path traversal é rejeitado (ErrInvalidFilename)
// - tamanho acima de MaxBytes é rejeitado antes de gravar (ErrFileTooLarge)
// - escrita parcial é removida em caso de erro
func (s *LocalStorage) Save(fh *multipart.FileHeader) (*StoredFile, error) {
	name := fh.Filename
	if name == "" || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) {
		return nil, ErrInvalidFilename
	}

	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return nil, ErrFileTooLarge
	}

	now := time.Now()
	dir := filepath.Join(s.BaseDir, fmt.Sprintf("%04d_%02d", now.Year(), int(now.Month())))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	ext := extSanitizer.ReplaceAllString(strings.ToLower(filepath.Ext(name)), "")
	storedName := uuid.NewString() + ext
	dstPath := filepath.Join(dir, storedName)

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, err
	}

	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dstPath) // não deixa arquivo parcial para trás
		return nil, err
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &StoredFile{
		OriginalFilename: name,
		StoredFilename:   storedName,
		Path:             dstPath,
		Size:             written,
		MimeType:         mimeType,
	}, nil
}

// Remove apaga o arquivo físico. Arquivo já ausente não é erro.
func (s *LocalStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
