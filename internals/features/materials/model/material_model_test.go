package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialCategoryValid(t *testing.T) {
	for _, c := range []MaterialCategory{
		MaterialCategoryCodigo, MaterialCategoryApresentacao,
		MaterialCategoryDocumento, MaterialCategoryExercicio, MaterialCategoryGeral,
	} {
		assert.True(t, c.Valid(), "categoria %s", c)
	}
	assert.False(t, MaterialCategory("video").Valid())
	assert.False(t, MaterialCategory("").Valid())
}
