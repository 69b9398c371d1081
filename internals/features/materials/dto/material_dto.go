// file: internals/features/materials/dto/material_dto.go
package dto

import (
	"strings"

	"trabalhos_backend/internals/features/materials/model"
	"trabalhos_backend/internals/helpers/listquery"
	"trabalhos_backend/internals/helpers/storage"
)

/* ==============================
   CREATE (POST /materials)
============================== */

type CreateMaterialRequest struct {
	Title       string `validate:"required"`
	Subject     string `validate:"required"`
	Description string `validate:"omitempty"`
	Category    string `validate:"omitempty,oneof=codigo apresentacao documento exercicio geral"`
}

func (r *CreateMaterialRequest) ToModel(f *storage.StoredFile) *model.MaterialModel {
	category := model.MaterialCategory(strings.TrimSpace(r.Category))
	if category == "" {
		category = model.MaterialCategoryGeral
	}
	return &model.MaterialModel{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Subject:     strings.TrimSpace(r.Subject),
		Category:    category,

		OriginalFilename: f.OriginalFilename,
		StoredFilename:   f.StoredFilename,
		FilePath:         f.Path,
		FileSize:         f.Size,
		MimeType:         f.MimeType,
	}
}

/* ==============================
   PATCH (PATCH /materials/:id)
============================== */

type UpdateMaterialRequest struct {
	Title       *string `json:"title" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	Subject     *string `json:"subject" validate:"omitempty"`
	Category    *string `json:"category" validate:"omitempty,oneof=codigo apresentacao documento exercicio geral"`
}

func BuildMaterialUpdates(r *UpdateMaterialRequest) map[string]any {
	updates := make(map[string]any)
	if r.Title != nil {
		updates["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		updates["description"] = strings.TrimSpace(*r.Description)
	}
	if r.Subject != nil {
		updates["subject"] = strings.TrimSpace(*r.Subject)
	}
	if r.Category != nil {
		updates["category"] = strings.TrimSpace(*r.Category)
	}
	return updates
}

/* ==============================
   DETAIL ( + is_previewable)
============================== */

type MaterialDetailResponse struct {
	model.MaterialModel
	IsPreviewable bool `json:"is_previewable"`
}

/* ==============================
   SUBJECTS (GET /materials/subjects)
============================== */

type SubjectCount struct {
	Subject string `json:"subject"`
	Total   int64  `json:"total"`
}

/* ==============================
   LIST spec (filtros/sort permitidos)
============================== */

var ListSpec = listquery.Spec{
	Rules: []listquery.Rule{
		{Param: "subject", Column: "subject", Mode: listquery.Contains},
		{Param: "category", Column: "category", Mode: listquery.Exact},
		{Param: "search", Mode: listquery.Search,
			Columns: []string{"title", "description", "subject", "original_filename"}},
	},
	SortColumns: map[string]string{
		"created_at": "created_at",
		"title":      "title",
		"subject":    "subject",
		"category":   "category",
		"file_size":  "file_size",
	},
	DefaultSort: "created_at",
}
