package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/configs"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/entity"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.CustomerSession{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Staff{}, &entity.Attendance{},
		&entity.Admin{},
	))
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_table_active
		 ON customer_sessions (table_number)
		 WHERE active AND deleted_at IS NULL`,
	).Error)
	require.NoError(t, db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_email_live
		 ON staff (email)
		 WHERE deleted_at IS NULL`,
	).Error)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{Username: "boss", Password: string(hash), Role: "admin"}).Error)

	cfg := &configs.Config{
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		JWTRefreshSecret: "test-refresh-secret",
		JWTRefreshTTL:    24 * time.Hour,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := do(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"username": "boss", "password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	return data["accessToken"].(string)
}

// Full customer flow: check the table, seat a party, get the conflict on a
// double seat, place an order, and advance it from the dashboard.
func TestEndToEndTableFlow(t *testing.T) {
	r := setupRouter(t)

	// table 5 starts free
	w, body := do(t, r, http.MethodGet, "/customer-session/check/5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["isOccupied"])

	// Alice takes it
	w, body = do(t, r, http.MethodPost, "/customer-session", "", gin.H{
		"tableNumber": "5", "customerName": "Alice", "numberOfPeople": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, true, data["active"])

	// Bob can't
	w, body = do(t, r, http.MethodPost, "/customer-session", "", gin.H{
		"tableNumber": "5", "customerName": "Bob", "numberOfPeople": 4,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	details := body["sessionDetails"].(map[string]any)
	assert.Equal(t, "Alice", details["customerName"])
	assert.EqualValues(t, 2, details["numberOfPeople"])

	// Alice orders
	w, body = do(t, r, http.MethodPost, "/orders", "", gin.H{
		"tableNumber":  "5",
		"customerName": "Alice",
		"items":        []gin.H{{"name": "Pizza", "price": 299, "quantity": 2}},
		"total":        598,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, "pending", data["status"])
	assert.EqualValues(t, 598, data["total"])
	orderID := int(data["ID"].(float64))

	// kitchen picks it up
	token := login(t, r)
	w, body = do(t, r, http.MethodPut, fmt.Sprintf("/admin/orders/%d", orderID), token, gin.H{
		"status": "preparing",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]any)
	assert.Equal(t, "preparing", data["status"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/admin/orders"},
		{http.MethodGet, "/admin/dashboard-stats"},
		{http.MethodGet, "/admin/staff"},
		{http.MethodPost, "/admin/staff/attendance/check-in/1"},
	} {
		w, _ := do(t, r, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	w, _ := do(t, r, http.MethodGet, "/admin/orders", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Managers get into the dashboard but only admins can mint accounts.
func TestRegisterRequiresAdminRole(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	w, _ := do(t, r, http.MethodPost, "/admin/register", token, gin.H{
		"username": "floor-manager", "password": "managerpass", "role": "manager",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := do(t, r, http.MethodPost, "/admin/login", "", gin.H{
		"username": "floor-manager", "password": "managerpass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	managerToken := body["data"].(map[string]any)["accessToken"].(string)

	// the manager token passes the group middleware elsewhere
	w, _ = do(t, r, http.MethodGet, "/admin/orders", managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// but not on register
	w, _ = do(t, r, http.MethodPost, "/admin/register", managerToken, gin.H{
		"username": "sneaky", "password": "sneakypass1", "role": "admin",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAttendanceFlow(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	// hire someone
	w, body := do(t, r, http.MethodPost, "/admin/staff", token, gin.H{
		"name": "Dave", "email": "dave@example.com", "phone": "0800000000", "role": "waiter",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	staffID := int(body["data"].(map[string]any)["ID"].(float64))

	// check in, once
	w, body = do(t, r, http.MethodPost, fmt.Sprintf("/admin/staff/attendance/check-in/%d", staffID), token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	record := body["data"].(map[string]any)
	assert.Equal(t, "Dave", record["staffName"])
	assert.Equal(t, "present", record["status"])

	w, _ = do(t, r, http.MethodPost, fmt.Sprintf("/admin/staff/attendance/check-in/%d", staffID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown staff is 404
	w, _ = do(t, r, http.MethodPost, "/admin/staff/attendance/check-in/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// check out, once
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/admin/staff/attendance/check-out/%d", staffID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodPut, fmt.Sprintf("/admin/staff/attendance/check-out/%d", staffID), token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// listing includes the enriched record
	w, body = do(t, r, http.MethodGet, "/admin/staff/attendance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := body["data"].([]any)
	require.Len(t, records, 1)
}

func TestSessionCloseEndpoint(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	w, _ := do(t, r, http.MethodPost, "/customer-session", "", gin.H{
		"tableNumber": "3", "customerName": "Alice", "numberOfPeople": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodPut, "/admin/customer-session/close/3", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// table is free again
	w, body := do(t, r, http.MethodGet, "/customer-session/check/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["data"].(map[string]any)["isOccupied"])

	w, _ = do(t, r, http.MethodPut, "/admin/customer-session/close/3", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuCRUD(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	// public menu starts empty
	w, body := do(t, r, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["data"])

	w, body = do(t, r, http.MethodPost, "/admin/menu", token, gin.H{
		"name": "Pizza", "description": "Wood-fired", "price": 299, "category": "Main Course",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := int(body["data"].(map[string]any)["ID"].(float64))

	w, body = do(t, r, http.MethodPut, fmt.Sprintf("/admin/menu/%d", itemID), token, gin.H{
		"name": "Pizza", "description": "Wood-fired", "price": 349, "category": "Main Course",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 349, body["data"].(map[string]any)["price"])

	w, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/admin/menu/%d", itemID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/admin/menu/%d", itemID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
