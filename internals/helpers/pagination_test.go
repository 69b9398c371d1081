package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func parseFor(t *testing.T, target string) Params {
	t.Helper()

	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "created_at", "desc")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseFor(t, "/")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
}

func TestParseFiberClampsLimit(t *testing.T) {
	assert.Equal(t, 100, parseFor(t, "/?limit=9999").PerPage)
	assert.Equal(t, 20, parseFor(t, "/?limit=0").PerPage)
	assert.Equal(t, 20, parseFor(t, "/?limit=-5").PerPage)
	assert.Equal(t, 20, parseFor(t, "/?limit=abc").PerPage)
	assert.Equal(t, 1, parseFor(t, "/?limit=1").PerPage)
}

func TestParseFiberClampsPage(t *testing.T) {
	assert.Equal(t, 1, parseFor(t, "/?page=0").Page)
	assert.Equal(t, 1, parseFor(t, "/?page=-3").Page)
	assert.Equal(t, 7, parseFor(t, "/?page=7").Page)
}

func TestParseFiberSortOrder(t *testing.T) {
	assert.Equal(t, "asc", parseFor(t, "/?sort_order=ASC").SortOrder)
	assert.Equal(t, "desc", parseFor(t, "/?sort_order=qualquer").SortOrder)
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, Params{Page: 2, PerPage: 20})
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)

	empty := BuildPagination(0, Params{Page: 1, PerPage: 20})
	assert.Equal(t, 0, empty.TotalPages)

	exact := BuildPagination(40, Params{Page: 1, PerPage: 20})
	assert.Equal(t, 2, exact.TotalPages)
}
