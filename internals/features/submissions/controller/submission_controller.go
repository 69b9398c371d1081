// file: internals/features/submissions/controller/submission_controller.go
package controller

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "trabalhos_backend/internals/features/submissions/dto"
	model "trabalhos_backend/internals/features/submissions/model"
	helper "trabalhos_backend/internals/helpers"
	"trabalhos_backend/internals/helpers/listquery"
	"trabalhos_backend/internals/helpers/preview"
	"trabalhos_backend/internals/helpers/storage"
)

/* =======================================================
   Controller
   ======================================================= */

type SubmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Storage   *storage.LocalStorage
}

func NewSubmissionController(db *gorm.DB, st *storage.LocalStorage) *SubmissionController {
	return &SubmissionController{
		DB:        db,
		Validator: validator.New(),
		Storage:   st,
	}
}

// Colunas expostas na listagem (stored_filename/file_path ficam de fora).
var listColumns = []string{
	"id", "student_name", "student_ra", "subject", "title", "notes",
	"original_filename", "file_size", "mime_type", "status", "feedback",
	"created_at", "updated_at",
}

func invalidStatusMsg() string {
	ss := model.SubmissionStatuses()
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return "Status inválido. Use: " + strings.Join(parts, ", ")
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id < 1 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

/* ==========================
   Routes
   ========================== */

// Create: POST /submissions (aluno envia trabalho + arquivo)
func (ctl *SubmissionController) Create(c *fiber.Ctx) error {
	req := dto.CreateSubmissionRequest{
		StudentName: strings.TrimSpace(c.FormValue("student_name")),
		StudentRA:   strings.TrimSpace(c.FormValue("student_ra")),
		Subject:     strings.TrimSpace(c.FormValue("subject")),
		Title:       strings.TrimSpace(c.FormValue("title")),
		Notes:       strings.TrimSpace(c.FormValue("notes")),
	}

	switch {
	case req.StudentName == "":
		return helper.JsonError(c, fiber.StatusBadRequest, "Nome do aluno é obrigatório.")
	case req.StudentRA == "":
		return helper.JsonError(c, fiber.StatusBadRequest, "RA/Número do aluno é obrigatório.")
	case req.Subject == "":
		return helper.JsonError(c, fiber.StatusBadRequest, "Matéria é obrigatória.")
	case req.Title == "":
		return helper.JsonError(c, fiber.StatusBadRequest, "Título do trabalho é obrigatório.")
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo é obrigatório.")
	}

	stored, err := ctl.Storage.Save(fh)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Arquivo excede o tamanho máximo permitido.")
		case errors.Is(err, storage.ErrInvalidFilename):
			return helper.JsonError(c, fiber.StatusBadRequest, "Nome de arquivo inválido.")
		default:
			log.Printf("[SUBMISSION ERROR] upload: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro no upload.")
		}
	}

	row := req.ToModel(stored)
	if err := ctl.DB.Create(row).Error; err != nil {
		// não deixa arquivo órfão quando o INSERT falha
		_ = ctl.Storage.Remove(stored.Path)
		log.Printf("[SUBMISSION ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno ao salvar o envio.")
	}

	log.Printf("[SUBMISSION] Nova entrega: ID=%d aluno=%q RA=%q matéria=%q",
		row.ID, row.StudentName, row.StudentRA, row.Subject)

	return helper.JsonCreated(c, fiber.Map{
		"message":    "Trabalho enviado com sucesso!",
		"id":         row.ID,
		"created_at": row.CreatedAt,
	})
}

// List: GET /submissions (admin, filtros + paginação)
func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc")

	conds, args := dto.ListSpec.Compose(func(k string) string { return c.Query(k) })

	q := ctl.DB.Model(&model.SubmissionModel{})
	if w := listquery.Where(conds); w != "" {
		q = q.Where(w, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[LIST ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar envios.")
	}

	rows := make([]model.SubmissionModel, 0)
	if err := q.Select(listColumns).
		Order(dto.ListSpec.OrderBy(p.SortBy, p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[LIST ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar envios.")
	}

	return helper.JsonList(c, rows, helper.BuildPagination(total, p))
}

// ExportCSV: GET /submissions/export/csv (admin, sem paginação)
func (ctl *SubmissionController) ExportCSV(c *fiber.Ctx) error {
	conds, args := dto.ExportSpec.Compose(func(k string) string { return c.Query(k) })

	q := ctl.DB.Model(&model.SubmissionModel{})
	if w := listquery.Where(conds); w != "" {
		q = q.Where(w, args...)
	}

	var rows []model.SubmissionModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		log.Printf("[CSV EXPORT ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao exportar CSV.")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="envios.csv"`)
	return c.Send(BuildSubmissionsCSV(rows))
}

// GetByID: GET /submissions/:id (admin, detalhe + is_previewable)
func (ctl *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.SubmissionModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Envio não encontrado.")
		}
		log.Printf("[DETAIL ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar envio.")
	}

	return helper.JsonOK(c, dto.SubmissionDetailResponse{
		SubmissionModel: row,
		IsPreviewable:   preview.IsTextFile(row.OriginalFilename),
	})
}

// Download: GET /submissions/:id/download (admin, stream do arquivo)
func (ctl *SubmissionController) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.SubmissionModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Envio não encontrado.")
		}
		log.Printf("[DOWNLOAD ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao baixar arquivo.")
	}

	if _, err := os.Stat(row.FilePath); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Arquivo não encontrado no servidor.")
	}

	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="`+url.PathEscape(row.OriginalFilename)+`"`)
	if err := c.SendFile(row.FilePath); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Arquivo não encontrado no servidor.")
	}
	c.Set(fiber.HeaderContentType, row.MimeType)
	return nil
}

// Preview: GET /submissions/:id/preview (admin, trecho de texto)
func (ctl *SubmissionController) Preview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.SubmissionModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Envio não encontrado.")
		}
		log.Printf("[PREVIEW ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar preview.")
	}

	if !preview.IsTextFile(row.OriginalFilename) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Este arquivo não suporta preview de texto.")
	}

	pv, err := preview.GetPreview(row.FilePath, row.OriginalFilename)
	if err != nil {
		if os.IsNotExist(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Arquivo não encontrado no servidor.")
		}
		log.Printf("[PREVIEW ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar preview.")
	}

	return helper.JsonOK(c, pv)
}

// Patch: PATCH /submissions/:id (admin atualiza status/feedback)
func (ctl *SubmissionController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var req dto.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido.")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, invalidStatusMsg())
	}

	updates := dto.BuildSubmissionUpdates(&req)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar.")
	}

	var existing model.SubmissionModel
	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Envio não encontrado.")
		}
		log.Printf("[UPDATE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar envio.")
	}

	// Última escrita vence: update incondicional, sem check otimista.
	if err := ctl.DB.Model(&existing).Updates(updates).Error; err != nil {
		log.Printf("[UPDATE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar envio.")
	}

	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		log.Printf("[UPDATE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar envio.")
	}

	log.Printf("[UPDATE] Envio ID=%d atualizado: status=%v feedback=%v",
		id, req.Status != nil, req.Feedback != nil)

	return helper.JsonOK(c, existing)
}
