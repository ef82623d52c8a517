package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	cartapp "github.com/storefront/backend/internal/application/cart"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/memstore"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fee, err := valueobject.NewMoneyZARFromString("50.00")
	require.NoError(t, err)

	service := cartapp.NewCartService(memstore.NewCartStore(), stubCatalog(), fee)
	engine := gin.New()
	NewCartHandler(service).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func createCart(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/carts", "")
	require.Equal(t, http.StatusCreated, w.Code)
	return resp.Data.(map[string]interface{})["id"].(string)
}

func TestCartHandler_CreateAndGet(t *testing.T) {
	engine := newCartTestEngine(t)
	cartID := createCart(t, engine)

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/carts/"+cartID, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, cartID, data["id"])
	assert.Equal(t, float64(0), data["line_count"])
}

func TestCartHandler_GetCart_Errors(t *testing.T) {
	engine := newCartTestEngine(t)

	t.Run("malformed id yields 400", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/carts/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("unknown cart yields 404", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/carts/0e0f6a4a-5c7e-4ba4-b6a4-93c1a4ab0784", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	engine := newCartTestEngine(t)
	cartID := createCart(t, engine)

	t.Run("adds a product", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
			`{"product_code":"item8"}`)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["line_count"])
		assert.Equal(t, "R17.99", data["subtotal_display"])
	})

	t.Run("merges repeated adds into one line", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
			`{"product_code":"item8"}`)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["line_count"])
		lines := data["lines"].([]interface{})
		assert.Equal(t, float64(2), lines[0].(map[string]interface{})["quantity"])
	})

	t.Run("unknown product yields 404", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
			`{"product_code":"nope"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("missing body yields 400", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	engine := newCartTestEngine(t)
	cartID := createCart(t, engine)

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		`{"product_code":"item1"}`)

	t.Run("sets quantity", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodPut, "/api/v1/carts/"+cartID+"/items/item1",
			`{"quantity":3}`)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		lines := data["lines"].([]interface{})
		assert.Equal(t, float64(3), lines[0].(map[string]interface{})["quantity"])
	})

	t.Run("clamps zero to one", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodPut, "/api/v1/carts/"+cartID+"/items/item1",
			`{"quantity":0}`)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		lines := data["lines"].([]interface{})
		assert.Equal(t, float64(1), lines[0].(map[string]interface{})["quantity"])
	})

	t.Run("missing line yields 404", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodPut, "/api/v1/carts/"+cartID+"/items/item7",
			`{"quantity":2}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	engine := newCartTestEngine(t)
	cartID := createCart(t, engine)

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		`{"product_code":"item1"}`)

	t.Run("removes the line", func(t *testing.T) {
		w, resp := doJSON(t, engine, http.MethodDelete, "/api/v1/carts/"+cartID+"/items/item1", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(0), data["line_count"])
	})

	t.Run("repeat removal is a no-op", func(t *testing.T) {
		w, _ := doJSON(t, engine, http.MethodDelete, "/api/v1/carts/"+cartID+"/items/item1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCartHandler_Totals(t *testing.T) {
	engine := newCartTestEngine(t)
	cartID := createCart(t, engine)

	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		`{"product_code":"item1"}`)
	_, _ = doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		`{"product_code":"item1"}`)
	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/carts/"+cartID+"/items",
		`{"product_code":"item7"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// 2 x 29.99 + 32.99 = 92.97, plus 50.00 delivery
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "R92.97", data["subtotal_display"])
	assert.Equal(t, "R142.97", data["total_display"])
}
