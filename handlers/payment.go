package handlers

import (
	"net/http"

	"clinicport/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment-intent creation.
type PaymentHandler struct {
	Svc    payment.PaymentService
	Logger *zap.Logger
}

func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent. The price
// is in dollars; the client secret of the created intent is returned.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var body struct {
		Price float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("CreatePaymentIntent: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clientSecret, err := h.Svc.CreateIntent(c.Request.Context(), body.Price)
	if err != nil {
		h.Logger.Error("CreatePaymentIntent: stripe call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
