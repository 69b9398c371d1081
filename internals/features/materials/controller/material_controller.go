// file: internals/features/materials/controller/material_controller.go
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

	dto "trabalhos_backend/internals/features/materials/dto"
	model "trabalhos_backend/internals/features/materials/model"
	helper "trabalhos_backend/internals/helpers"
	"trabalhos_backend/internals/helpers/listquery"
	"trabalhos_backend/internals/helpers/preview"
	"trabalhos_backend/internals/helpers/storage"
)

/* =======================================================
   Controller
   ======================================================= */

type MaterialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Storage   *storage.LocalStorage
}

func NewMaterialController(db *gorm.DB, st *storage.LocalStorage) *MaterialController {
	return &MaterialController{
		DB:        db,
		Validator: validator.New(),
		Storage:   st,
	}
}

// Colunas expostas na listagem (stored_filename/file_path ficam de fora).
var listColumns = []string{
	"id", "title", "description", "subject", "category",
	"original_filename", "file_size", "mime_type",
	"created_at", "updated_at",
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

// Create: POST /materials (admin publica material + arquivo)
func (ctl *MaterialController) Create(c *fiber.Ctx) error {
	req := dto.CreateMaterialRequest{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Subject:     strings.TrimSpace(c.FormValue("subject")),
		Category:    strings.TrimSpace(c.FormValue("category")),
	}

	switch {
	case req.Title == "":
		return helper.JsonError(c, fiber.StatusBadRequest, "Título é obrigatório.")
	case req.Subject == "":
		return helper.JsonError(c, fiber.StatusBadRequest, "Matéria/Turma é obrigatória.")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Categoria inválida. Use: codigo, apresentacao, documento, exercicio, geral")
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
			log.Printf("[MATERIAL ERROR] upload: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro no upload.")
		}
	}

	row := req.ToModel(stored)
	if err := ctl.DB.Create(row).Error; err != nil {
		_ = ctl.Storage.Remove(stored.Path)
		log.Printf("[MATERIAL ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno ao salvar material.")
	}

	log.Printf("[MATERIAL] Novo material: ID=%d título=%q matéria=%q categoria=%q",
		row.ID, row.Title, row.Subject, row.Category)

	return helper.JsonCreated(c, fiber.Map{
		"message":    "Material enviado com sucesso!",
		"id":         row.ID,
		"created_at": row.CreatedAt,
	})
}

// List: GET /materials (qualquer autenticado)
func (ctl *MaterialController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc")

	conds, args := dto.ListSpec.Compose(func(k string) string { return c.Query(k) })

	q := ctl.DB.Model(&model.MaterialModel{})
	if w := listquery.Where(conds); w != "" {
		q = q.Where(w, args...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[MATERIAL LIST ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar materiais.")
	}

	rows := make([]model.MaterialModel, 0)
	if err := q.Select(listColumns).
		Order(dto.ListSpec.OrderBy(p.SortBy, p.SortOrder)).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[MATERIAL LIST ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar materiais.")
	}

	return helper.JsonList(c, rows, helper.BuildPagination(total, p))
}

// Subjects: GET /materials/subjects (matérias distintas + contagem)
func (ctl *MaterialController) Subjects(c *fiber.Ctx) error {
	var out []dto.SubjectCount
	if err := ctl.DB.Model(&model.MaterialModel{}).
		Select("subject, COUNT(*) AS total").
		Group("subject").
		Order("subject ASC").
		Scan(&out).Error; err != nil {
		log.Printf("[MATERIAL SUBJECTS ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar matérias.")
	}
	if out == nil {
		out = []dto.SubjectCount{}
	}
	// array puro, sem envelope (o cliente itera direto na resposta)
	return helper.JsonOK(c, out)
}

// GetByID: GET /materials/:id
func (ctl *MaterialController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.MaterialModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado.")
		}
		log.Printf("[MATERIAL DETAIL ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar material.")
	}

	return helper.JsonOK(c, dto.MaterialDetailResponse{
		MaterialModel: row,
		IsPreviewable: preview.IsTextFile(row.OriginalFilename),
	})
}

// Download: GET /materials/:id/download
func (ctl *MaterialController) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.MaterialModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado.")
		}
		log.Printf("[MATERIAL DOWNLOAD ERROR] %v", err)
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

// Preview: GET /materials/:id/preview
func (ctl *MaterialController) Preview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.MaterialModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado.")
		}
		log.Printf("[MATERIAL PREVIEW ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar preview.")
	}

	if !preview.IsTextFile(row.OriginalFilename) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Este arquivo não suporta preview.")
	}

	pv, err := preview.GetPreview(row.FilePath, row.OriginalFilename)
	if err != nil {
		if os.IsNotExist(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Arquivo não encontrado no servidor.")
		}
		log.Printf("[MATERIAL PREVIEW ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar preview.")
	}

	return helper.JsonOK(c, pv)
}

// Patch: PATCH /materials/:id (admin edita metadados)
func (ctl *MaterialController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var req dto.UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido.")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Categoria inválida. Use: codigo, apresentacao, documento, exercicio, geral")
	}

	updates := dto.BuildMaterialUpdates(&req)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhum campo para atualizar.")
	}

	var existing model.MaterialModel
	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado.")
		}
		log.Printf("[MATERIAL UPDATE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar material.")
	}

	if err := ctl.DB.Model(&existing).Updates(updates).Error; err != nil {
		log.Printf("[MATERIAL UPDATE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar material.")
	}

	if err := ctl.DB.First(&existing, "id = ?", id).Error; err != nil {
		log.Printf("[MATERIAL UPDATE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar material.")
	}

	return helper.JsonOK(c, existing)
}

// Delete: DELETE /materials/:id (remove arquivo + linha)
func (ctl *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido.")
	}

	var row model.MaterialModel
	if err := ctl.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado.")
		}
		log.Printf("[MATERIAL DELETE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir material.")
	}

	// arquivo primeiro; falha de unlink não bloqueia a exclusão da linha
	fileWarning := ""
	if err := ctl.Storage.Remove(row.FilePath); err != nil {
		log.Printf("[MATERIAL DELETE] falha ao remover arquivo ID=%d path=%q: %v", row.ID, row.FilePath, err)
		fileWarning = "Arquivo não pôde ser removido do disco."
	}

	if err := ctl.DB.Delete(&model.MaterialModel{}, "id = ?", id).Error; err != nil {
		log.Printf("[MATERIAL DELETE ERROR] %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao excluir material.")
	}

	log.Printf("[MATERIAL] Material excluído: ID=%d título=%q", row.ID, row.Title)

	resp := fiber.Map{"message": "Material excluído com sucesso."}
	if fileWarning != "" {
		resp["file_warning"] = fileWarning
	}
	return helper.JsonOK(c, resp)
}
