package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A especificação embutida existe e é JSON válido.
func TestSwaggerSpec_EmbutidaEValida(t *testing.T) {
	require.NotEmpty(t, swaggerSpec, "a especificação deve estar embutida no binário")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(swaggerSpec, &doc))
	assert.Equal(t, "2.0", doc["swagger"])
	assert.NotEmpty(t, doc["paths"], "a especificação deve declarar as rotas")
}

// O middleware de swagger sobe com o conteúdo embutido, sem depender de
// arquivo em disco, e serve a UI em /docs.
func TestSwaggerMiddleware_SobeComConteudoEmbutido(t *testing.T) {
	app := fiber.New()
	require.NotPanics(t, func() {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: swaggerSpec,
			Path:        "docs",
			Title:       "salao-api",
		}))
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// As demais rotas seguem respondendo com o middleware montado.
	resp2, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
