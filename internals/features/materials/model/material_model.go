// file: internals/features/materials/model/material_model.go
package model

import (
	"time"
)

/* =========================================================
   ENUM: MaterialCategory
   ========================================================= */

type MaterialCategory string

const (
	MaterialCategoryCodigo       MaterialCategory = "codigo"
	MaterialCategoryApresentacao MaterialCategory = "apresentacao"
	MaterialCategoryDocumento    MaterialCategory = "documento"
	MaterialCategoryExercicio    MaterialCategory = "exercicio"
	MaterialCategoryGeral        MaterialCategory = "geral"
)

func (c MaterialCategory) Valid() bool {
	switch c {
	case MaterialCategoryCodigo, MaterialCategoryApresentacao,
		MaterialCategoryDocumento, MaterialCategoryExercicio, MaterialCategoryGeral:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: materials
   ========================================================= */

type MaterialModel struct {
	ID int `gorm:"primaryKey;autoIncrement;column:id" json:"id"`

	Title       string           `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description string           `gorm:"type:text;column:description" json:"description"`
	Subject     string           `gorm:"type:varchar(120);not null;column:subject" json:"subject"`
	Category    MaterialCategory `gorm:"type:varchar(20);not null;default:'geral';column:category" json:"category"`

	// Arquivo anexado (mesmo formato de submissions)
	OriginalFilename string `gorm:"type:text;not null;column:original_filename" json:"original_filename"`
	StoredFilename   string `gorm:"type:text;not null;column:stored_filename" json:"stored_filename,omitempty"`
	FilePath         string `gorm:"type:text;not null;column:file_path" json:"file_path,omitempty"`
	FileSize         int64  `gorm:"not null;column:file_size" json:"file_size"`
	MimeType         string `gorm:"type:varchar(120);not null;default:'application/octet-stream';column:mime_type" json:"mime_type"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (MaterialModel) TableName() string { return "materials" }
