package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trabalhos_backend/internals/features/materials/model"
	"trabalhos_backend/internals/helpers/storage"
)

func TestToModelDefaultsCategoryToGeral(t *testing.T) {
	req := CreateMaterialRequest{Title: " Slides POO ", Subject: "POO"}
	sf := &storage.StoredFile{OriginalFilename: "slides.pdf", Size: 10, MimeType: "application/pdf"}

	m := req.ToModel(sf)
	assert.Equal(t, "Slides POO", m.Title)
	assert.Equal(t, model.MaterialCategoryGeral, m.Category)

	req.Category = "codigo"
	assert.Equal(t, model.MaterialCategoryCodigo, req.ToModel(sf).Category)
}

func TestBuildMaterialUpdates(t *testing.T) {
	assert.Empty(t, BuildMaterialUpdates(&UpdateMaterialRequest{}))

	title := "  Novo título "
	cat := "exercicio"
	upd := BuildMaterialUpdates(&UpdateMaterialRequest{Title: &title, Category: &cat})
	assert.Equal(t, map[string]any{"title": "Novo título", "category": "exercicio"}, upd)
}

func TestMaterialListSpecSortWhitelist(t *testing.T) {
	assert.Equal(t, "file_size ASC", ListSpec.OrderBy("file_size", "asc"))
	assert.Equal(t, "created_at DESC", ListSpec.OrderBy("stored_filename", "desc"))
}
