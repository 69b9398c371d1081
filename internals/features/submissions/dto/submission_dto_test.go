package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trabalhos_backend/internals/features/submissions/model"
	"trabalhos_backend/internals/helpers/storage"
)

func TestToModelTrimsAndDefaultsStatus(t *testing.T) {
	req := CreateSubmissionRequest{
		StudentName: "  Maria Souza ",
		StudentRA:   " 2025001",
		Subject:     "POO ",
		Title:       " TP1 ",
		Notes:       "  ",
	}
	sf := &storage.StoredFile{
		OriginalFilename: "tp1.zip",
		StoredFilename:   "abc.zip",
		Path:             "/tmp/2025_03/abc.zip",
		Size:             42,
		MimeType:         "application/zip",
	}

	m := req.ToModel(sf)
	assert.Equal(t, "Maria Souza", m.StudentName)
	assert.Equal(t, "2025001", m.StudentRA)
	assert.Equal(t, "POO", m.Subject)
	assert.Equal(t, "TP1", m.Title)
	assert.Equal(t, "", m.Notes)
	assert.Equal(t, model.SubmissionStatusRecebido, m.Status)
	assert.Equal(t, "tp1.zip", m.OriginalFilename)
	assert.Equal(t, int64(42), m.FileSize)
}

func TestBuildSubmissionUpdates(t *testing.T) {
	assert.Empty(t, BuildSubmissionUpdates(&UpdateSubmissionRequest{}))

	st := "corrigido"
	upd := BuildSubmissionUpdates(&UpdateSubmissionRequest{Status: &st})
	assert.Equal(t, map[string]any{"status": "corrigido"}, upd)

	// feedback vazio explícito limpa o campo (ponteiro distingue ausente de vazio)
	fb := ""
	upd = BuildSubmissionUpdates(&UpdateSubmissionRequest{Feedback: &fb})
	assert.Equal(t, map[string]any{"feedback": ""}, upd)

	upd = BuildSubmissionUpdates(&UpdateSubmissionRequest{Status: &st, Feedback: &fb})
	assert.Len(t, upd, 2)
}

func TestListSpecSortWhitelist(t *testing.T) {
	assert.Equal(t, "student_name ASC", ListSpec.OrderBy("student_name", "asc"))
	assert.Equal(t, "created_at DESC", ListSpec.OrderBy("file_path", "asc"))
}

func TestExportSpecIgnoresListOnlyFilters(t *testing.T) {
	conds, _ := ExportSpec.Compose(func(k string) string {
		return map[string]string{
			"search":       "maria",
			"student_name": "maria",
			"subject":      "POO",
		}[k]
	})
	// export só conhece subject/status/date_from/date_to
	assert.Equal(t, []string{"subject ILIKE ?"}, conds)
}
