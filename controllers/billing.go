// controllers/billing.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Saaquib01/TheTasteQuest/models"
	"github.com/Saaquib01/TheTasteQuest/services"
	"github.com/Saaquib01/TheTasteQuest/store"
	"github.com/Saaquib01/TheTasteQuest/utils"

	"github.com/gin-gonic/gin"
)

// BillingController handles the order entry and completion endpoints
type BillingController struct {
	Billing  *services.BillingService
	Sessions *services.SessionManager
}

func NewBillingController(billing *services.BillingService, sessions *services.SessionManager) *BillingController {
	return &BillingController{Billing: billing, Sessions: sessions}
}

// AddLineItemInput defines the expected JSON structure for adding a line item.
// Phone and quantity are validated by the billing workflow so an empty phone
// surfaces as a billing validation error rather than a binding failure.
type AddLineItemInput struct {
	SessionID string `json:"sessionId"`
	Phone     string `json:"phone"`
	ItemCode  string `json:"itemCode"`
	Quantity  int    `json:"quantity"`
}

// StartSession opens a new bill session and returns its bill number
func (bc *BillingController) StartSession(c *gin.Context) {
	session := bc.Sessions.GetOrCreate("")
	c.JSON(http.StatusCreated, session)
}

// AddLineItem records one item against the session's bill number
func (bc *BillingController) AddLineItem(c *gin.Context) {
	var input AddLineItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	session := bc.Sessions.GetOrCreate(input.SessionID)

	row, err := bc.Billing.AddLineItem(session, input.Phone, input.ItemCode, input.Quantity)
	if err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    row.ItemName + " added! Total Amount: Rs. " + strconv.Itoa(row.TotalAmount),
		"sessionId":  session.ID,
		"billNumber": session.BillNumber,
		"row":        row,
	})
}

// GetHistory returns past orders for a phone number, newest first
func (bc *BillingController) GetHistory(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	history, err := bc.Billing.ListHistory(phone)
	if err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phone":  phone,
		"orders": history,
	})
}

// GetPending returns all pending orders with their ledger row indices
func (bc *BillingController) GetPending(c *gin.Context) {
	pending, err := bc.Billing.ListPending()
	if err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

// CompleteOrder marks the ledger row at the given index as Completed
func (bc *BillingController) CompleteOrder(c *gin.Context) {
	rowIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid row index format")
		return
	}

	if err := bc.Billing.CompleteOrder(rowIndex); err != nil {
		respondBillingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order marked as completed"})
}

func respondBillingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrItemNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Menu item not found")
	case errors.Is(err, store.ErrRowOutOfRange):
		utils.RespondWithError(c, http.StatusNotFound, "Order not found for the given row index")
	case errors.Is(err, store.ErrStoreMissing), errors.Is(err, store.ErrHeaderMismatch):
		utils.RespondWithError(c, http.StatusInternalServerError, "Billing ledger unavailable: "+err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to access billing ledger")
	}
}
