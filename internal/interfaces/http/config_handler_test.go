package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmabol/farmacia-api/internal/application/usecase"
	"github.com/farmabol/farmacia-api/internal/domain/entity"
	apphttp "github.com/farmabol/farmacia-api/internal/interfaces/http"
)

// fakeConfigRepo repository.ConfigRepository en memoria; cfg nil = sin fila.
type fakeConfigRepo struct {
	cfg *entity.PharmacyConfig
}

func (r *fakeConfigRepo) Get() (*entity.PharmacyConfig, error) {
	if r.cfg == nil {
		return nil, nil
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *fakeConfigRepo) Upsert(cfg *entity.PharmacyConfig) error {
	cp := *cfg
	r.cfg = &cp
	return nil
}

func buildConfigApp(repo *fakeConfigRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewConfigHandler(usecase.NewConfigUseCase(repo))
	app.Get("/config", handler.Get)
	return app
}

// Instalación fresca: la fila única todavía no existe y eso es un 404, no un
// fallo interno.
func TestConfigGet_SinConfiguracionRetorna404(t *testing.T) {
	app := buildConfigApp(&fakeConfigRepo{})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"sin fila de configuración la respuesta es 404, no 500")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestConfigGet_ConfiguracionExistente(t *testing.T) {
	app := buildConfigApp(&fakeConfigRepo{cfg: &entity.PharmacyConfig{
		Name:  "Farmacia Central",
		Phone: "70000000",
	}})

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Farmacia Central", body["name"])
}
