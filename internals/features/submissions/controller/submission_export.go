// file: internals/features/submissions/controller/submission_export.go
package controller

import (
	"strconv"
	"strings"

	model "trabalhos_backend/internals/features/submissions/model"
)

/* =======================================================
   Export CSV
   - BOM UTF-8 para o Excel reconhecer acentuação
   - campos de texto entre aspas (aspas internas dobradas);
     id e file_size saem crus, como o cabeçalho
   ======================================================= */

const csvBOM = "\ufeff"

const csvHeader = "ID,Nome,RA,Matéria,Título,Observações,Arquivo,Tamanho(bytes),Status,Feedback,Data Envio"

func escapeCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// BuildSubmissionsCSV monta o arquivo completo em memória.
func BuildSubmissionsCSV(rows []model.SubmissionModel) []byte {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvHeader)

	for _, r := range rows {
		feedback := ""
		if r.Feedback != nil {
			feedback = *r.Feedback
		}
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(r.ID),
			escapeCSV(r.StudentName),
			escapeCSV(r.StudentRA),
			escapeCSV(r.Subject),
			escapeCSV(r.Title),
			escapeCSV(r.Notes),
			escapeCSV(r.OriginalFilename),
			strconv.FormatInt(r.FileSize, 10),
			escapeCSV(string(r.Status)),
			escapeCSV(feedback),
			escapeCSV(r.CreatedAt.Format("2006-01-02 15:04:05")),
		}, ","))
	}
	return []byte(csvBOM + strings.Join(lines, "\n"))
}
