package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // Cache key building
	"time"     // Cache TTL and transaction dates

	"finance_tracker/internal/domain"     // Domain models
	"finance_tracker/internal/middleware" // Resolved user lookup
	"finance_tracker/internal/service"    // Transaction operations
	"finance_tracker/internal/utils"      // Redis cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// transactionListTTL bounds how stale a cached page may be
const transactionListTTL = time.Minute

// TransactionRequest is the payload for creating or replacing a
// transaction. Updates are full replacements.
type TransactionRequest struct {
	Amount          float64   `json:"amount" binding:"required,gt=0"` // Amount must be positive
	IsExpense       *bool     `json:"is_expense" binding:"required"`  // Expense flag must be provided
	TransactionDate time.Time `json:"transaction_date"`               // Optional, defaults to now
	CategoryID      uint      `json:"category_id" binding:"required"` // Category must be provided
}

// txListVersionKey holds the user's list-cache generation counter
func txListVersionKey(userID uint) string {
	return "txlist:user:" + strconv.Itoa(int(userID)) + ":ver"
}

// txListKey builds the cache key of one list page for one user. The
// version is part of the key, so bumping it orphans every cached page
// at once, whatever page number or size it was stored under.
func txListKey(userID uint, version int64, page, limit int) string {
	return "txlist:user:" + strconv.Itoa(int(userID)) +
		":v:" + strconv.FormatInt(version, 10) +
		":page:" + strconv.Itoa(page) +
		":size:" + strconv.Itoa(limit)
}

// txListVersion reads the user's current cache generation. Any failure
// falls back to generation 0; orphaned pages age out via the TTL.
func txListVersion(ctx context.Context, rdb *redis.Client, userID uint) int64 {
	if rdb == nil {
		return 0 // Caching disabled
	}
	version, err := rdb.Get(ctx, txListVersionKey(userID)).Int64()
	if err != nil {
		return 0 // Missing counter or redis error
	}
	return version
}

// invalidateTxList bumps the user's cache generation after a write so
// every cached list page of that user stops being served
func invalidateTxList(rdb *redis.Client, userID uint) {
	if rdb == nil {
		return // Caching disabled
	}
	_ = rdb.Incr(context.Background(), txListVersionKey(userID)).Err()
}

// ListTransactionsHandler returns one page of the caller's transactions,
// read through the redis cache when one is configured
func ListTransactionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		page, limit, _ := pageParams(c)

		var cached []domain.Transaction
		version := txListVersion(c.Request.Context(), rdb, user.ID)
		key := txListKey(user.ID, version, page, limit)
		if hit, err := utils.GetCache(c.Request.Context(), rdb, key, &cached); err == nil && hit {
			Success(c, http.StatusOK, "Transactions fetched successfully", ListEnvelope{
				TotalCount: len(cached), // Rows in this page
				Data:       cached,      // Cached page
			})
			return
		}

		transactions, err := service.ListTransactions(db, user.ID, page, limit)
		if err != nil {
			FailFromError(c, err)
			return
		}
		_ = utils.SetCache(c.Request.Context(), rdb, key, transactions, transactionListTTL)
		Success(c, http.StatusOK, "Transactions fetched successfully", ListEnvelope{
			TotalCount: len(transactions), // Rows in this page
			Data:       transactions,      // Page of transactions
		})
	}
}

// GetTransactionHandler returns one of the caller's transactions by id
func GetTransactionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		transaction, err := service.GetTransaction(db, user.ID, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		Success(c, http.StatusOK, "Transaction found successfully", transaction)
	}
}

// CreateTransactionHandler records a transaction owned by the caller
func CreateTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var req TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		transaction, err := service.CreateTransaction(db, user.ID, service.TransactionInput{
			Amount:          req.Amount,          // Amount
			IsExpense:       *req.IsExpense,      // Expense flag
			TransactionDate: req.TransactionDate, // Date, zero means now
			CategoryID:      req.CategoryID,      // Category
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        user.ID,            // Owner
			"transaction_id": transaction.ID,     // New transaction ID
			"amount":         transaction.Amount, // Amount
		}).Info("Transaction created")
		invalidateTxList(rdb, user.ID)
		Success(c, http.StatusCreated, "Transaction created successfully", transaction)
	}
}

// UpdateTransactionHandler replaces one of the caller's transactions
func UpdateTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		var req TransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			Fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
		transaction, err := service.UpdateTransaction(db, user.ID, id, service.TransactionInput{
			Amount:          req.Amount,          // Amount
			IsExpense:       *req.IsExpense,      // Expense flag
			TransactionDate: req.TransactionDate, // Date, zero keeps the current one
			CategoryID:      req.CategoryID,      // Category
		})
		if err != nil {
			FailFromError(c, err)
			return
		}
		invalidateTxList(rdb, user.ID)
		Success(c, http.StatusOK, "Transaction updated successfully", transaction)
	}
}

// DeleteTransactionHandler removes one of the caller's transactions
func DeleteTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, ok := idParam(c)
		if !ok {
			return
		}
		transaction, err := service.DeleteTransaction(db, user.ID, id)
		if err != nil {
			FailFromError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":        user.ID,        // Owner
			"transaction_id": transaction.ID, // Deleted transaction ID
		}).Info("Transaction deleted")
		invalidateTxList(rdb, user.ID)
		Success(c, http.StatusOK, "Transaction deleted successfully", gin.H{
			"transaction_id": transaction.ID, // Deleted transaction ID
		})
	}
}
