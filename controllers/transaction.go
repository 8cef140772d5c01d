// controllers/transaction.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"barberpos-backend/config"
	"barberpos-backend/models"
	"barberpos-backend/services"
	"barberpos-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionItemInput references either a catalog service or a product.
// Service lines require a barber; product lines may omit one.
type TransactionItemInput struct {
	ServiceID *uuid.UUID `json:"serviceId"`
	ProductID *uuid.UUID `json:"productId"`
	BarberID  *uuid.UUID `json:"barberId"`
	Quantity  int        `json:"quantity" binding:"required,min=1"`
}

// CreateTransactionInput defines the expected JSON structure for recording a sale
type CreateTransactionInput struct {
	Items           []TransactionItemInput `json:"items" binding:"required,min=1,dive"`
	DiscountAmount  float64                `json:"discountAmount" binding:"min=0"`
	DiscountPercent float64                `json:"discountPercent" binding:"min=0,max=100"`
	DiscountType    string                 `json:"discountType" binding:"omitempty,oneof=amount percent"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required,oneof=cash transfer qris"`
	PaymentStatus   string                 `json:"paymentStatus" binding:"required,oneof=pending completed"`
	Notes           string                 `json:"notes"`
}

// CreateTransaction records a sale. The transaction, its items (with name,
// price, rate and commission snapshots) and any stock decrements commit
// atomically; afterwards nothing on the transaction is ever mutated.
func CreateTransaction(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	cashierUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var subtotal float64
	var items []models.TransactionItem
	var lowStock []models.Product

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, line := range input.Items {
		switch {
		case line.ServiceID != nil:
			item, err := buildServiceItem(tx, line)
			if err != nil {
				tx.Rollback()
				respondItemError(c, err)
				return
			}
			subtotal += item.Subtotal
			items = append(items, item)

		case line.ProductID != nil:
			item, product, err := buildProductItem(tx, line)
			if err != nil {
				tx.Rollback()
				respondItemError(c, err)
				return
			}
			subtotal += item.Subtotal
			items = append(items, item)
			if product.Stock <= product.MinStock {
				lowStock = append(lowStock, product)
			}

		default:
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, "Item must reference a service or a product")
			return
		}
	}

	total := subtotal
	switch input.DiscountType {
	case "amount":
		total = subtotal - input.DiscountAmount
	case "percent":
		total = subtotal - subtotal*input.DiscountPercent/100
	}
	if total < 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Discount exceeds subtotal")
		return
	}

	transaction := models.Transaction{
		ID:              uuid.New(),
		CashierID:       cashierUUID,
		TotalAmount:     total,
		DiscountAmount:  input.DiscountAmount,
		DiscountPercent: input.DiscountPercent,
		DiscountType:    input.DiscountType,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   input.PaymentStatus,
		Notes:           input.Notes,
		Items:           items,
	}

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record transaction")
		return
	}

	tx.Commit()

	for _, p := range lowStock {
		notify("low_stock", "Stok Menipis: "+p.Name,
			fmt.Sprintf("Sisa stok %d (minimum %d)", p.Stock, p.MinStock),
			map[string]interface{}{"productId": p.ID.String(), "stock": p.Stock})
	}

	c.JSON(http.StatusCreated, transaction)
}

var errBadItem = errors.New("bad item")

func buildServiceItem(tx *gorm.DB, line TransactionItemInput) (models.TransactionItem, error) {
	var service models.ServiceCatalog
	if err := tx.Where("id = ? AND is_active = true", line.ServiceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TransactionItem{}, fmt.Errorf("%w: service not found: %s", errBadItem, line.ServiceID)
		}
		return models.TransactionItem{}, err
	}

	if line.BarberID == nil {
		return models.TransactionItem{}, fmt.Errorf("%w: service item requires a barber", errBadItem)
	}
	var barber models.Barber
	if err := tx.Where("id = ? AND is_active = true", line.BarberID).First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TransactionItem{}, fmt.Errorf("%w: barber not found: %s", errBadItem, line.BarberID)
		}
		return models.TransactionItem{}, err
	}

	itemSubtotal := service.Price * float64(line.Quantity)
	return models.TransactionItem{
		ID:               uuid.New(),
		ItemName:         service.Name,
		ItemType:         models.ItemTypeService,
		Quantity:         line.Quantity,
		UnitPrice:        service.Price,
		Subtotal:         itemSubtotal,
		BarberID:         &barber.ID,
		BarberName:       barber.Name,
		CommissionRate:   barber.CommissionService,
		CommissionAmount: services.CommissionAmount(itemSubtotal, barber.CommissionService),
	}, nil
}

func buildProductItem(tx *gorm.DB, line TransactionItemInput) (models.TransactionItem, models.Product, error) {
	var product models.Product
	if err := tx.Where("id = ? AND is_active = true", line.ProductID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TransactionItem{}, product, fmt.Errorf("%w: product not found: %s", errBadItem, line.ProductID)
		}
		return models.TransactionItem{}, product, err
	}

	if product.Stock < line.Quantity {
		return models.TransactionItem{}, product, fmt.Errorf("%w: insufficient stock for %s", errBadItem, product.Name)
	}
	if err := tx.Model(&product).Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
		return models.TransactionItem{}, product, err
	}
	product.Stock -= line.Quantity

	item := models.TransactionItem{
		ID:        uuid.New(),
		ItemName:  product.Name,
		ItemType:  models.ItemTypeProduct,
		Quantity:  line.Quantity,
		UnitPrice: product.Price,
		Subtotal:  product.Price * float64(line.Quantity),
	}

	// Product commission only accrues when the sale is attributed to a barber.
	if line.BarberID != nil {
		var barber models.Barber
		if err := tx.Where("id = ? AND is_active = true", line.BarberID).First(&barber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.TransactionItem{}, product, fmt.Errorf("%w: barber not found: %s", errBadItem, line.BarberID)
			}
			return models.TransactionItem{}, product, err
		}
		item.BarberID = &barber.ID
		item.BarberName = barber.Name
		item.CommissionRate = barber.CommissionProduct
		item.CommissionAmount = services.CommissionAmount(item.Subtotal, barber.CommissionProduct)
	}

	return item, product, nil
}

func respondItemError(c *gin.Context, err error) {
	if errors.Is(err, errBadItem) {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
}

// GetTransactions lists sales for a window (?from=YYYY-MM-DD&to=YYYY-MM-DD,
// defaults to today)
func GetTransactions(c *gin.Context) {
	window, err := utils.ParseWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := config.DB.Preload("Items").
		Where("created_at BETWEEN ? AND ?", window.From, window.To).
		Order("created_at DESC")
	if status := c.Query("paymentStatus"); status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var transactions []models.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransaction retrieves a specific sale by ID
func GetTransaction(c *gin.Context) {
	txUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var transaction models.Transaction
	if err := config.DB.Preload("Items").
		Where("id = ?", txUUID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, transaction)
}
