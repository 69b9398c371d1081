package controller

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "trabalhos_backend/internals/features/submissions/model"
)

func TestBuildSubmissionsCSVHeaderAndBOM(t *testing.T) {
	out := string(BuildSubmissionsCSV(nil))
	assert.True(t, strings.HasPrefix(out, "\ufeff"))
	// cabeçalho cru, sem aspas e sem linha extra no fim
	assert.Equal(t, "ID,Nome,RA,Matéria,Título,Observações,Arquivo,Tamanho(bytes),Status,Feedback,Data Envio",
		strings.TrimPrefix(out, "\ufeff"))
}

func TestBuildSubmissionsCSVQuotesTextFieldsOnly(t *testing.T) {
	fb := `refazer a questão "2"`
	rows := []model.SubmissionModel{
		{
			ID:               7,
			StudentName:      `Maria "Mari" Souza`,
			StudentRA:        "2025001",
			Subject:          "POO, Turma B",
			Title:            "TP1",
			Notes:            "",
			OriginalFilename: "tp1.zip",
			FileSize:         1234,
			Status:           model.SubmissionStatusEmCorrecao,
			Feedback:         &fb,
			CreatedAt:        time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		},
	}

	raw := string(BuildSubmissionsCSV(rows))

	// id e file_size crus; campos de texto entre aspas, aspas internas dobradas
	assert.Contains(t, raw, `7,"Maria ""Mari"" Souza","2025001"`)
	assert.Contains(t, raw, `"tp1.zip",1234,"em_correcao"`)
	assert.Contains(t, raw, `"refazer a questão ""2"""`)
	assert.Contains(t, raw, `"POO, Turma B"`)
	assert.False(t, strings.HasSuffix(raw, "\n"))

	// um parser CSV padrão recupera os valores originais
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(raw, "\ufeff")))
	records, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	rec := records[1]
	assert.Equal(t, "7", rec[0])
	assert.Equal(t, `Maria "Mari" Souza`, rec[1])
	assert.Equal(t, "POO, Turma B", rec[3])
	assert.Equal(t, "1234", rec[7])
	assert.Equal(t, "em_correcao", rec[8])
	assert.Equal(t, `refazer a questão "2"`, rec[9])
	assert.Equal(t, "2025-03-10 14:30:00", rec[10])
}

func TestBuildSubmissionsCSVNilFeedbackIsEmpty(t *testing.T) {
	rows := []model.SubmissionModel{{ID: 1, Status: model.SubmissionStatusRecebido, CreatedAt: time.Now()}}
	raw := strings.TrimPrefix(string(BuildSubmissionsCSV(rows)), "\ufeff")

	records, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, "", records[1][9])
	assert.Equal(t, "recebido", records[1][8])
}
