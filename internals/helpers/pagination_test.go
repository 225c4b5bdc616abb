package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolvePagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging_PorDefecto(t *testing.T) {
	p := resolvePagingFor(t, "/items", 20, 100)
	assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)
}

func TestResolvePaging_PaginaYTamano(t *testing.T) {
	p := resolvePagingFor(t, "/items?page=3&per_page=10", 20, 100)
	assert.Equal(t, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, p)
}

func TestResolvePaging_AliasLimit(t *testing.T) {
	p := resolvePagingFor(t, "/items?limit=15", 20, 100)
	assert.Equal(t, 15, p.PerPage)
}

func TestResolvePaging_NormalizaValoresInvalidos(t *testing.T) {
	p := resolvePagingFor(t, "/items?page=-2&per_page=0", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)

	p = resolvePagingFor(t, "/items?per_page=9999", 20, 100)
	assert.Equal(t, 100, p.PerPage, "se respeta el tope")

	p = resolvePagingFor(t, "/items?per_page=9999", 20, 0)
	assert.Equal(t, 9999, p.PerPage, "maxPerPage=0 desactiva el tope")
}

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10}

	pg := BuildPagination(25, 10, p)
	assert.Equal(t, int64(25), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
	assert.Equal(t, 10, pg.Count)

	pg = BuildPagination(0, 0, Paging{Page: 1, PerPage: 10})
	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
