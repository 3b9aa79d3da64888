package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bingo-arena-backend/internal/models"
	"bingo-arena-backend/internal/services"
)

type LedgerHandler struct {
	ledger *services.FinancialSafetyManager
}

func NewLedgerHandler(ledger *services.FinancialSafetyManager) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

func (h *LedgerHandler) Deposit(c *gin.Context) {
	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	txn, err := h.ledger.ProcessDeposit(req.UserID, req.Amount, req.Method)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidAmount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   "Failed to process deposit",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"transaction": txn,
	})
}

func (h *LedgerHandler) Withdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	txn, err := h.ledger.ProcessWithdrawal(req.UserID, req.Amount)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidAmount) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   "Failed to process withdrawal",
			"details": err.Error(),
		})
		return
	}

	if txn == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient available balance",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"transaction": txn,
	})
}

func (h *LedgerHandler) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": h.ledger.Balance(),
	})
}

func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	transactions := h.ledger.Transactions(limit)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"transactions": transactions,
		"count":        len(transactions),
	})
}

func (h *LedgerHandler) GetFundHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"health":  h.ledger.EmergencyFundCheck(),
	})
}
