package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	razorpay "github.com/razorpay/razorpay-go"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
)

// OnlineOrderResponse is what the checkout UI needs to open the Razorpay
// widget: the gateway order ID, the amount in paise and the public key.
type OnlineOrderResponse struct {
	RazorpayOrderID string  `json:"razorpay_order_id"`
	Amount          int     `json:"amount"` // paise
	Currency        string  `json:"currency"`
	KeyID           string  `json:"key_id"`
	PaymentID       string  `json:"payment_id"`
	AmountRupees    float64 `json:"amount_rupees"`
}

// VerifyPaymentRequest carries the checkout callback fields whose signature
// proves the payment happened.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	orderRepo   *repositories.OrderRepository
	khata       *KhataService

	keyID         string
	keySecret     string
	webhookSecret string
}

func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	orderRepo *repositories.OrderRepository,
	khata *KhataService,
	keyID, keySecret, webhookSecret string,
) *PaymentService {
	return &PaymentService{
		paymentRepo:   paymentRepo,
		orderRepo:     orderRepo,
		khata:         khata,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

func (s *PaymentService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// RecordPayment settles an order with an offline method (cash, upi, card)
// or books the amount on the customer's khata.
func (s *PaymentService) RecordPayment(ctx context.Context, req *models.InitiatePaymentRequest, customerID string) (*models.Payment, error) {
	order, err := s.orderRepo.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	amount := req.Amount
	if amount <= 0 {
		amount = order.TotalAmount
	}

	p := &models.Payment{
		OrderID: req.OrderID,
		Amount:  amount,
		Method:  req.Method,
		Status:  models.PaymentSuccess,
	}

	if req.Method == models.MethodKhata {
		if customerID == "" {
			return nil, fmt.Errorf("khata payment requires a customer")
		}
		_, err := s.khata.RecordTransaction(ctx, &models.CreateKhataTransactionRequest{
			CustomerID: customerID,
			OrderID:    &req.OrderID,
			Type:       models.KhataDebit,
			Amount:     amount,
			Notes:      "order billed to khata",
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateOnlineOrder opens a Razorpay order for the unpaid amount and tracks
// it as a pending payment plus online transaction.
func (s *PaymentService) CreateOnlineOrder(ctx context.Context, orderID string) (*OnlineOrderResponse, error) {
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("online payments not configured")
	}

	order, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	amountPaise := int(order.TotalAmount * 100)
	rzpOrder, err := client.Order.Create(map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  fmt.Sprintf("order_%s", order.ID),
		"notes": map[string]interface{}{
			"order_id":      order.ID,
			"restaurant_id": order.RestaurantID,
		},
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}
	rzpOrderID, _ := rzpOrder["id"].(string)
	if rzpOrderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	p := &models.Payment{
		OrderID: orderID,
		Amount:  order.TotalAmount,
		Method:  models.MethodOnline,
		Status:  models.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	txn := &models.OnlineTransaction{
		PaymentID:       p.ID,
		RazorpayOrderID: rzpOrderID,
		Amount:          order.TotalAmount,
		Currency:        "INR",
		Status:          models.PaymentPending,
	}
	if err := s.paymentRepo.CreateOnlineTransaction(ctx, txn); err != nil {
		return nil, err
	}

	return &OnlineOrderResponse{
		RazorpayOrderID: rzpOrderID,
		Amount:          amountPaise,
		Currency:        "INR",
		KeyID:           s.keyID,
		PaymentID:       p.ID,
		AmountRupees:    order.TotalAmount,
	}, nil
}

// VerifyPayment checks the checkout callback signature and settles the
// pending payment. Repeated verification of a settled payment is a no-op.
func (s *PaymentService) VerifyPayment(ctx context.Context, req *VerifyPaymentRequest) (*models.Payment, error) {
	if !s.verifyCheckoutSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		s.settle(ctx, req.RazorpayOrderID, "", models.PaymentFailed)
		return nil, fmt.Errorf("invalid payment signature")
	}
	return s.settle(ctx, req.RazorpayOrderID, req.RazorpayPaymentID, models.PaymentSuccess)
}

func (s *PaymentService) settle(ctx context.Context, rzpOrderID, rzpPaymentID, status string) (*models.Payment, error) {
	txn, err := s.paymentRepo.GetOnlineByRazorpayOrder(ctx, rzpOrderID)
	if err != nil {
		return nil, fmt.Errorf("unknown razorpay order %s: %w", rzpOrderID, err)
	}
	if txn.Status == models.PaymentSuccess {
		// Already settled, webhook and checkout callback can both fire
		return &models.Payment{ID: txn.PaymentID, Amount: txn.Amount, Method: models.MethodOnline, Status: txn.Status}, nil
	}

	if err := s.paymentRepo.SettleOnlineTransaction(ctx, txn.ID, rzpPaymentID, status); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.UpdateStatus(ctx, txn.PaymentID, status); err != nil {
		return nil, err
	}
	return &models.Payment{ID: txn.PaymentID, Amount: txn.Amount, Method: models.MethodOnline, Status: status}, nil
}

func (s *PaymentService) verifyCheckoutSignature(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID string) ([]*models.Payment, error) {
	return s.paymentRepo.ListByOrder(ctx, orderID)
}

// VerifyWebhookSignature authenticates a Razorpay webhook body
func (s *PaymentService) VerifyWebhookSignature(body []byte, signature string) bool {
	if s.webhookSecret == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(s.webhookSecret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ProcessWebhook settles payments from asynchronous gateway events, which
// may arrive before or after the checkout callback.
func (s *PaymentService) ProcessWebhook(ctx context.Context, event string, payload map[string]interface{}) error {
	entity := paymentEntity(payload)
	orderID, _ := entity["order_id"].(string)
	paymentID, _ := entity["id"].(string)
	if orderID == "" {
		return fmt.Errorf("webhook missing order_id")
	}

	switch event {
	case "payment.captured":
		_, err := s.settle(ctx, orderID, paymentID, models.PaymentSuccess)
		return err
	case "payment.failed":
		_, err := s.settle(ctx, orderID, paymentID, models.PaymentFailed)
		return err
	default:
		log.Printf("[Payment] Unhandled webhook event: %s", event)
		return nil
	}
}

func paymentEntity(payload map[string]interface{}) map[string]interface{} {
	if p, ok := payload["payment"].(map[string]interface{}); ok {
		if e, ok := p["entity"].(map[string]interface{}); ok {
			return e
		}
		return p
	}
	return payload
}
