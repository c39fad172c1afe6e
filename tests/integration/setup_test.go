package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fatura/internal/handlers"
	"fatura/internal/logger"
	"fatura/internal/middleware"
	"fatura/internal/models"
	"fatura/internal/services"
	"fatura/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Category{},
		&models.BillingType{},
		&models.Invoice{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	invoiceService := services.NewInvoiceService(db)
	categoryService := services.NewCategoryService(db)
	billingTypeService := services.NewBillingTypeService(db)

	// Handlers
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	billingTypeHandler := handlers.NewBillingTypeHandler(billingTypeService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)
	router.NoRoute(handlers.NotFound)

	invoices := router.Group("/invoices")
	invoices.POST("", invoiceHandler.CreateInvoice)
	invoices.GET("", invoiceHandler.ListInvoices)
	invoices.GET("/summary", invoiceHandler.GetSummary)
	invoices.GET("/:id", invoiceHandler.GetInvoiceByID)
	invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
	invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)

	categories := router.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	billingTypes := router.Group("/billingTypes")
	billingTypes.POST("", billingTypeHandler.CreateBillingType)
	billingTypes.GET("", billingTypeHandler.ListBillingTypes)
	billingTypes.GET("/:id", billingTypeHandler.GetBillingTypeByID)
	billingTypes.PUT("/:id", billingTypeHandler.UpdateBillingType)
	billingTypes.DELETE("/:id", billingTypeHandler.DeleteBillingType)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// data extracts the data payload object from a success envelope.
func data(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	payload, ok := parseJSON(t, rec)["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object in response, got: %s", rec.Body.String())
	}
	return payload
}

// dataList extracts the data payload array from a success envelope.
func dataList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	payload, ok := parseJSON(t, rec)["data"].([]interface{})
	if !ok {
		t.Fatalf("expected data array in response, got: %s", rec.Body.String())
	}
	return payload
}

// createCategory creates a category through the API and returns its ID.
func (app *testApp) createCategory(t *testing.T, name string) string {
	t.Helper()
	rec := app.request("POST", "/categories", fmt.Sprintf(`{"name":%q}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	return data(t, rec)["id"].(string)
}

// createBillingType creates a billing type through the API and returns its ID.
func (app *testApp) createBillingType(t *testing.T, name string) string {
	t.Helper()
	rec := app.request("POST", "/billingTypes", fmt.Sprintf(`{"name":%q}`, name))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create billing type failed: %d %s", rec.Code, rec.Body.String())
	}
	return data(t, rec)["id"].(string)
}
