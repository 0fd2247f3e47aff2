package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance_tracker/internal/domain"
	"finance_tracker/internal/middleware"
	"finance_tracker/internal/token"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope mirrors the response shape of every endpoint
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupAPI wires a full router against in-memory sqlite, with caching
// disabled (nil redis client), mirroring cmd/server.
func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Transaction{}, &domain.Budget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tokens, err := token.NewService("test-secret", "HS256", 30*time.Minute)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	r := gin.New()

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", SignupHandler(db))
	authGroup.POST("/login", LoginHandler(db, tokens))
	authGroup.POST("/refresh", RefreshHandler(db, tokens))

	categoryGroup := r.Group("/categories")
	categoryGroup.GET("", ListCategoriesHandler(db))
	categoryGroup.GET("/:id", GetCategoryHandler(db))
	categoryGroup.POST("", CreateCategoryHandler(db))
	categoryGroup.PUT("/:id", UpdateCategoryHandler(db))
	categoryGroup.DELETE("/:id", DeleteCategoryHandler(db))

	transactionGroup := r.Group("/transactions")
	transactionGroup.Use(middleware.AuthMiddleware(tokens, db))
	transactionGroup.GET("", ListTransactionsHandler(db, nil))
	transactionGroup.GET("/:id", GetTransactionHandler(db))
	transactionGroup.POST("", CreateTransactionHandler(db, nil))
	transactionGroup.PUT("/:id", UpdateTransactionHandler(db, nil))
	transactionGroup.DELETE("/:id", DeleteTransactionHandler(db, nil))

	budgetGroup := r.Group("/budgets")
	budgetGroup.Use(middleware.AuthMiddleware(tokens, db))
	budgetGroup.GET("", ListBudgetsHandler(db))
	budgetGroup.GET("/:id", GetBudgetHandler(db))
	budgetGroup.POST("", CreateBudgetHandler(db))
	budgetGroup.PUT("/:id", UpdateBudgetHandler(db))
	budgetGroup.DELETE("/:id", DeleteBudgetHandler(db))

	return r, db
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, r *gin.Engine, method, path, bearer string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
	}
	return w, env
}

// signupAndLogin registers a user and returns its access token
func signupAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"first_name": "Test", "last_name": "User",
		"username": username, "email": username + "@example.com",
		"password": "correct-horse-battery",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d (body %s)", w.Code, w.Body.String())
	}
	w, env := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username, "password": "correct-horse-battery",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d (body %s)", w.Code, w.Body.String())
	}
	var pair token.Pair
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		t.Fatalf("decode token pair: %v", err)
	}
	return pair.AccessToken
}

// createCategory inserts a category over HTTP and returns its id
func createCategory(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/categories", "", gin.H{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category status = %d (body %s)", w.Code, w.Body.String())
	}
	var category domain.Category
	if err := json.Unmarshal(env.Data, &category); err != nil {
		t.Fatalf("decode category: %v", err)
	}
	return category.ID
}
