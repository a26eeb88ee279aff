package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant_pos_backend/internal/database"
	"restaurant_pos_backend/internal/router"

	"github.com/gin-gonic/gin"
)

// setupServer wires the full route tree against an in-memory database seeded
// with the admin/admin123 bootstrap account.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := database.InitializeSchema(db, "admin", "admin123"); err != nil {
		t.Fatalf("initialize schema: %v", err)
	}

	engine := gin.New()
	router.Setup(engine, db, t.TempDir(), "Test Kitchen")
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("login response has no access token")
	}
	return resp.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	engine := setupServer(t)

	token := login(t, engine, "admin", "admin123")
	if token == "" {
		t.Fatal("no token")
	}

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password returned %d, want 401", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := setupServer(t)

	for _, path := range []string{"/api/v1/menu", "/api/v1/menu/available", "/api/v1/reports/daily-sales"} {
		w := doJSON(t, engine, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token returned %d, want 401", path, w.Code)
		}
	}

	w := doJSON(t, engine, http.MethodGet, "/api/v1/menu", "not-a-real-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/v1/menu with bogus token returned %d, want 401", w.Code)
	}
}

func TestMenuAndOrderFlow(t *testing.T) {
	engine := setupServer(t)
	token := login(t, engine, "admin", "admin123")

	// Create a menu item.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/menu", token, map[string]interface{}{
		"name": "Masala Dosa", "category": "South Indian", "price": 100, "gst_percent": 5, "available_today": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create menu item returned %d: %s", w.Code, w.Body.String())
	}
	var item struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("decode menu item: %v", err)
	}

	// It shows up on the available listing.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/menu/available", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("available menu returned %d", w.Code)
	}

	// Finalize an order against it.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", token, map[string]interface{}{
		"order_type":       "Dine-In",
		"payment_method":   "Cash",
		"gst_percent":      5,
		"discount_percent": 10,
		"lines":            []map[string]interface{}{{"menu_item_id": item.ID, "quantity": 2}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("finalize order returned %d: %s", w.Code, w.Body.String())
	}
	var orderResp struct {
		OrderID int64 `json:"order_id"`
		Bill    struct {
			Subtotal float64 `json:"subtotal"`
			Total    float64 `json:"total"`
		} `json:"bill"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &orderResp); err != nil {
		t.Fatalf("decode order response: %v", err)
	}
	if orderResp.Bill.Subtotal != 200 || orderResp.Bill.Total != 190 {
		t.Errorf("bill = %+v, want subtotal 200 total 190", orderResp.Bill)
	}

	// The recorded order is fetchable.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders/1", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("get order returned %d: %s", w.Code, w.Body.String())
	}

	// The receipt streams back as a PDF.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders/1/receipt", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get receipt returned %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("receipt content type = %q, want application/pdf", ct)
	}

	// Daily sales reflects the finalized order.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/reports/daily-sales", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("daily sales returned %d", w.Code)
	}
	var sales struct {
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sales); err != nil {
		t.Fatalf("decode daily sales: %v", err)
	}
	if sales.Total != 190 {
		t.Errorf("daily sales total = %v, want 190", sales.Total)
	}

	// The ordered item cannot be deleted, only retired.
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/menu/1", token, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("delete ordered item returned %d, want 409", w.Code)
	}
	w = doJSON(t, engine, http.MethodPatch, "/api/v1/menu/1/availability", token, map[string]interface{}{"available": false})
	if w.Code != http.StatusOK {
		t.Errorf("set availability returned %d: %s", w.Code, w.Body.String())
	}
}

func TestOrderValidationOverHTTP(t *testing.T) {
	engine := setupServer(t)
	token := login(t, engine, "admin", "admin123")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders", token, map[string]interface{}{
		"order_type":     "Delivery",
		"payment_method": "Cash",
		"lines":          []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown order type returned %d, want 400", w.Code)
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders/999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing order returned %d, want 404", w.Code)
	}
}
