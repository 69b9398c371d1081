// file: internals/features/submissions/model/submission_model.go
package model

import (
	"time"
)

/* =========================================================
   ENUM: SubmissionStatus
   ========================================================= */

type SubmissionStatus string

const (
	SubmissionStatusRecebido   SubmissionStatus = "recebido"
	SubmissionStatusEmCorrecao SubmissionStatus = "em_correcao"
	SubmissionStatusCorrigido  SubmissionStatus = "corrigido"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusRecebido, SubmissionStatusEmCorrecao, SubmissionStatusCorrigido:
		return true
	default:
		return false
	}
}

func SubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{
		SubmissionStatusRecebido,
		SubmissionStatusEmCorrecao,
		SubmissionStatusCorrigido,
	}
}

/* =========================================================
   MODEL: submissions
   ========================================================= */

type SubmissionModel struct {
	ID int `gorm:"primaryKey;autoIncrement;column:id" json:"id"`

	// Identidade do aluno + trabalho
	StudentName string `gorm:"type:varchar(200);not null;column:student_name" json:"student_name"`
	StudentRA   string `gorm:"type:varchar(50);not null;column:student_ra" json:"student_ra"`
	Subject     string `gorm:"type:varchar(120);not null;column:subject" json:"subject"`
	Title       string `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Notes       string `gorm:"type:text;column:notes" json:"notes"`

	// Arquivo anexado
	OriginalFilename string `gorm:"type:text;not null;column:original_filename" json:"original_filename"`
	StoredFilename   string `gorm:"type:text;not null;column:stored_filename" json:"stored_filename,omitempty"`
	FilePath         string `gorm:"type:text;not null;column:file_path" json:"file_path,omitempty"`
	FileSize         int64  `gorm:"not null;column:file_size" json:"file_size"`
	MimeType         string `gorm:"type:varchar(120);not null;default:'application/octet-stream';column:mime_type" json:"mime_type"`

	// Workflow de correção
	Status   SubmissionStatus `gorm:"type:varchar(20);not null;default:'recebido';column:status" json:"status"`
	Feedback *string          `gorm:"type:text;column:feedback" json:"feedback"`

	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }
