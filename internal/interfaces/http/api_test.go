package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/auth"
	appreport "github.com/jhoicas/ferreteria-api/internal/application/report"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
	infrareport "github.com/jhoicas/ferreteria-api/internal/infrastructure/report"
	"github.com/jhoicas/ferreteria-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/ferreteria-api/internal/interfaces/http"
	"github.com/jhoicas/ferreteria-api/pkg/config"
	"github.com/jhoicas/ferreteria-api/pkg/logger"
)

// buildAPI levanta la aplicación completa contra una base en memoria,
// con el mismo cableado que cmd/api.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()

	db, err := sqlite.Open(config.DBConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	recorder := audit.NewRecorder(sqlite.NewAuditLogRepository(db), log)

	clientRepo := sqlite.NewClientRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	sellerRepo := sqlite.NewSellerRepository(db)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(sqlite.NewUserRepository(db), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		SellerUC:  usecase.NewSellerUseCase(sellerRepo),
		ClientUC:  usecase.NewClientUseCase(clientRepo),
		ProductUC: usecase.NewProductUseCase(productRepo),
		OrderUC:   usecase.NewOrderUseCase(sqlite.NewOrderRepository(db), sqlite.NewOrderDetailRepository(db)),
		StatsUC:   usecase.NewStatsUseCase(sqlite.NewStatsRepository(db)),
		ExportUC: appreport.NewExportUseCase(
			sqlite.NewReportRepository(db), clientRepo, productRepo, sellerRepo,
			infrareport.NewMarotoListRenderer(), infrareport.NewExcelRenderer(),
		),
		Audit:     recorder,
		JWTSecret: testJWTSecret,
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON y token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// loginAs registra un usuario y devuelve su token.
func loginAs(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"username": username, "email": username + "@ferreteria.co", "password": "secreto123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"username": username, "password": "secreto123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAPI_RegisterYLogin(t *testing.T) {
	app := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"username": "jgomez", "email": "jgomez@ferreteria.co", "password": "secreto123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Usuario registrado exitosamente", body["message"])

	// Username repetido
	resp = doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"username": "jgomez", "email": "otro@ferreteria.co", "password": "x",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Usuario o email ya existe", body["message"])

	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"username": "jgomez", "password": "secreto123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Login exitoso", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestAPI_LoginPasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildAPI(t)
	_ = loginAs(t, app, "jgomez")

	resp := doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"username": "jgomez", "password": "equivocado",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Credenciales inválidas", body["message"])
}

func TestAPI_Dashboard_SaludaConElID(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "jgomez")

	resp := doJSON(t, app, http.MethodGet, "/dashboard", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Bienvenido al dashboard, usuario 1", body["message"])
}

func TestAPI_RutasProtegidasSinToken_Retornan401(t *testing.T) {
	app := buildAPI(t)

	for _, path := range []string{"/dashboard", "/sellers", "/clients", "/products", "/orders", "/stats", "/export/orders"} {
		resp := doJSON(t, app, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s sin token", path)
		resp.Body.Close()
	}
}

func TestAPI_SellerCRUD(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "jgomez")

	resp := doJSON(t, app, http.MethodPost, "/sellers", fiber.Map{
		"name": "Marta Ruiz", "zone": "Norte", "phone": "3001234567", "email": "marta@ferreteria.co",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	assert.EqualValues(t, 1, created["id"])

	// Campo requerido ausente
	resp = doJSON(t, app, http.MethodPost, "/sellers", fiber.Map{"name": "Sin Zona"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Faltan datos", body["message"])

	// Patch parcial: solo zone
	resp = doJSON(t, app, http.MethodPut, "/sellers/1", fiber.Map{"zone": "Sur"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "Sur", updated["zone"])
	assert.Equal(t, "Marta Ruiz", updated["name"])

	// Update de inexistente
	resp = doJSON(t, app, http.MethodPut, "/sellers/99", fiber.Map{"zone": "Sur"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/sellers/1", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Vendedor eliminado", body["message"])

	resp = doJSON(t, app, http.MethodDelete, "/sellers/1", nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_ClientEmailDuplicado_Retorna400(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "jgomez")

	resp := doJSON(t, app, http.MethodPost, "/clients", fiber.Map{
		"name": "Constructora Andina", "email": "compras@andina.co",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/clients", fiber.Map{
		"name": "Otra Empresa", "email": "compras@andina.co",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "El email ya está registrado", body["message"])
}

// seedOrder crea cliente, vendedor, producto y una orden vía HTTP. Devuelve el token.
func seedOrder(t *testing.T, app *fiber.App) string {
	t.Helper()
	token := loginAs(t, app, "jgomez")

	resp := doJSON(t, app, http.MethodPost, "/clients", fiber.Map{
		"name": "Constructora Andina", "email": "compras@andina.co",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/sellers", fiber.Map{
		"name": "Marta Ruiz", "zone": "Norte", "email": "marta@ferreteria.co",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/products", fiber.Map{
		"name": "Taladro", "price": "349900", "stock": 12,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/orders", fiber.Map{
		"client_id": 1, "seller_id": 1, "date": "2026-08-30", "total": "349900",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	return token
}

func TestAPI_OrderConFKInvalida_Retorna400(t *testing.T) {
	app := buildAPI(t)
	token := loginAs(t, app, "jgomez")

	resp := doJSON(t, app, http.MethodPost, "/orders", fiber.Map{
		"client_id": 99, "seller_id": 99, "date": "2026-08-30", "total": "1000",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_OrderDetails_FlujoCompleto(t *testing.T) {
	app := buildAPI(t)
	token := seedOrder(t, app)

	resp := doJSON(t, app, http.MethodPost, "/orders/1/add_product", fiber.Map{
		"product_id": 1, "quantity": 2, "unit_price": "174950",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	detail := decodeBody(t, resp)
	assert.EqualValues(t, 1, detail["order_id"])

	resp = doJSON(t, app, http.MethodGet, "/orders/1/details", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var details []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&details))
	resp.Body.Close()
	require.Len(t, details, 1)

	// La orden con detalles no se puede borrar (RESTRICT)
	resp = doJSON(t, app, http.MethodDelete, "/orders/1", nil, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Borrando primero el detalle sí
	resp = doJSON(t, app, http.MethodDelete, "/order_details/1", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/orders/1", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_Stats(t *testing.T) {
	app := buildAPI(t)
	token := seedOrder(t, app)

	resp := doJSON(t, app, http.MethodGet, "/stats", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	assert.EqualValues(t, 1, body["total_orders"])
	assert.EqualValues(t, 1, body["total_products"])
	assert.EqualValues(t, 1, body["total_clients"])
	assert.EqualValues(t, 1, body["total_sellers"])
	assert.Equal(t, "349900", body["total_sales"], "decimal serializa como string JSON")
}

func TestAPI_ExportOrdersXLSX(t *testing.T) {
	app := buildAPI(t)
	token := seedOrder(t, app)

	resp := doJSON(t, app, http.MethodGet, "/export/orders", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ordenes.xlsx"`, resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestAPI_ExportPDFs(t *testing.T) {
	app := buildAPI(t)
	token := seedOrder(t, app)

	cases := map[string]string{
		"/export/orders/pdf":   `attachment; filename="ordenes.pdf"`,
		"/export/clients/pdf":  `attachment; filename="clientes.pdf"`,
		"/export/products/pdf": `attachment; filename="productos.pdf"`,
		"/export/sellers/pdf":  `attachment; filename="vendedores.pdf"`,
	}
	for path, disposition := range cases {
		resp := doJSON(t, app, http.MethodGet, path, nil, token)
		require.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)

		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"), "GET %s", path)
		assert.Equal(t, disposition, resp.Header.Get("Content-Disposition"), "GET %s", path)

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "GET %s debe producir un PDF", path)
	}
}
