// file: internals/features/submissions/dto/submission_dto.go
package dto

import (
	"strings"

	"trabalhos_backend/internals/features/submissions/model"
	"trabalhos_backend/internals/helpers/listquery"
	"trabalhos_backend/internals/helpers/storage"
)

/* ==============================
   CREATE (POST /submissions)
============================== */

type CreateSubmissionRequest struct {
	StudentName string `validate:"required"`
	StudentRA   string `validate:"required"`
	Subject     string `validate:"required"`
	Title       string `validate:"required"`
	Notes       string `validate:"omitempty"`
}

func (r *CreateSubmissionRequest) ToModel(f *storage.StoredFile) *model.SubmissionModel {
	return &model.SubmissionModel{
		StudentName: strings.TrimSpace(r.StudentName),
		StudentRA:   strings.TrimSpace(r.StudentRA),
		Subject:     strings.TrimSpace(r.Subject),
		Title:       strings.TrimSpace(r.Title),
		Notes:       strings.TrimSpace(r.Notes),

		OriginalFilename: f.OriginalFilename,
		StoredFilename:   f.StoredFilename,
		FilePath:         f.Path,
		FileSize:         f.Size,
		MimeType:         f.MimeType,

		Status: model.SubmissionStatusRecebido,
	}
}

/* ==============================
   PATCH (PATCH /submissions/:id)
============================== */

type UpdateSubmissionRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=recebido em_correcao corrigido"`
	Feedback *string `json:"feedback" validate:"omitempty"`
}

// BuildSubmissionUpdates monta o map de colunas alteradas; vazio quando
// nenhum campo foi enviado.
func BuildSubmissionUpdates(r *UpdateSubmissionRequest) map[string]any {
	updates := make(map[string]any)
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	if r.Feedback != nil {
		updates["feedback"] = *r.Feedback
	}
	return updates
}

/* ==============================
   DETAIL ( + is_previewable)
============================== */

type SubmissionDetailResponse struct {
	model.SubmissionModel
	IsPreviewable bool `json:"is_previewable"`
}

/* ==============================
   LIST spec (filtros/sort permitidos)
============================== */

// ListSpec declara os filtros e sorts aceitos por GET /submissions.
var ListSpec = listquery.Spec{
	Rules: []listquery.Rule{
		{Param: "subject", Column: "subject", Mode: listquery.Contains},
		{Param: "status", Column: "status", Mode: listquery.Exact},
		{Param: "student_name", Column: "student_name", Mode: listquery.Contains},
		{Param: "student_ra", Column: "student_ra", Mode: listquery.Contains},
		{Param: "date_from", Column: "created_at", Mode: listquery.DateFrom},
		{Param: "date_to", Column: "created_at", Mode: listquery.DateTo},
		{Param: "search", Mode: listquery.Search,
			Columns: []string{"student_name", "student_ra", "subject", "title"}},
	},
	SortColumns: map[string]string{
		"created_at":   "created_at",
		"student_name": "student_name",
		"subject":      "subject",
		"status":       "status",
		"student_ra":   "student_ra",
	},
	DefaultSort: "created_at",
}

// ExportSpec é o subconjunto de filtros do export CSV (sem paginação).
var ExportSpec = listquery.Spec{
	Rules: []listquery.Rule{
		{Param: "subject", Column: "subject", Mode: listquery.Contains},
		{Param: "status", Column: "status", Mode: listquery.Exact},
		{Param: "date_from", Column: "created_at", Mode: listquery.DateFrom},
		{Param: "date_to", Column: "created_at", Mode: listquery.DateTo},
	},
	SortColumns: map[string]string{"created_at": "created_at"},
	DefaultSort: "created_at",
}
