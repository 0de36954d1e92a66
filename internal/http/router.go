// Package http wires handlers onto the route tree. Public customer-facing
// routes (QR menu, cart, checkout) come first; everything else sits behind
// the auth middleware, with staff management and payroll further gated by
// role.
package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resto-backend/internal/handlers"
	"resto-backend/internal/middleware"
	"resto-backend/internal/monitoring"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Staff    *handlers.StaffHandler
	Attend   *handlers.AttendanceHandler
	Payroll  *handlers.PayrollHandler
	Menu     *handlers.MenuHandler
	Table    *handlers.TableHandler
	Cart     *handlers.CartHandler
	Order    *handlers.OrderHandler
	Khata    *handlers.KhataHandler
	Offer    *handlers.OfferHandler
	Vendor   *handlers.VendorHandler
	Inv      *handlers.InventoryHandler
	Payment  *handlers.PaymentHandler
	Report   *handlers.ReportHandler
	Realtime *handlers.RealtimeHandler
	Health   *handlers.HealthHandler
}

func NewRouter(h Handlers, authMW *middleware.AuthMiddleware, monitor *monitoring.Monitor) *mux.Router {
	r := mux.NewRouter()

	// Ops endpoints, outside /api
	r.HandleFunc("/health", h.Health.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")

	// Customer QR flow, no login required
	api.HandleFunc("/qr/{token}", h.Table.Resolve).Methods("GET")
	api.HandleFunc("/menu/{restaurantId}", h.Menu.GetMenu).Methods("GET")
	api.HandleFunc("/offers/{restaurantId}/active", h.Offer.ListActive).Methods("GET")

	api.HandleFunc("/cart/open", h.Cart.Open).Methods("POST")
	api.HandleFunc("/cart", h.Cart.Get).Methods("GET")
	api.HandleFunc("/cart/items", h.Cart.AddItem).Methods("POST")
	api.HandleFunc("/cart/items", h.Cart.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart/items/quantity", h.Cart.UpdateQuantity).Methods("PATCH")
	api.HandleFunc("/cart/checkout", h.Cart.Checkout).Methods("POST")

	api.HandleFunc("/orders/{restaurantId}/active", h.Order.ListActive).Methods("GET")
	api.HandleFunc("/orders/{id}", h.Order.Get).Methods("GET")

	// Online checkout and the gateway webhook
	api.HandleFunc("/payments/online/{orderId}", h.Payment.CreateOnline).Methods("POST")
	api.HandleFunc("/payments/verify", h.Payment.Verify).Methods("POST")
	api.HandleFunc("/payments/webhook", h.Payment.Webhook).Methods("POST")

	api.HandleFunc("/reports/bill/{orderId}", h.Report.Bill).Methods("GET")

	// Live order updates for the customer view
	api.HandleFunc("/realtime", h.Realtime.Subscribe).Methods("GET")

	// Everything below requires a valid token
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(authMW.Authenticate)

	protected.HandleFunc("/auth/me", h.Auth.Me).Methods("GET")
	protected.HandleFunc("/auth/totp/setup", h.Auth.TOTPSetup).Methods("POST")
	protected.HandleFunc("/auth/totp/enable", h.Auth.TOTPEnable).Methods("POST")
	protected.HandleFunc("/auth/totp/disable", h.Auth.TOTPDisable).Methods("POST")

	// Staff websocket: same stream, plus live session revocation
	protected.HandleFunc("/realtime/staff", h.Realtime.Subscribe).Methods("GET")

	// Order lifecycle (kitchen and counter)
	protected.HandleFunc("/orders", h.Order.Create).Methods("POST")
	protected.HandleFunc("/orders/{id}/status", h.Order.UpdateStatus).Methods("PATCH")
	protected.HandleFunc("/kitchen/{restaurantId}", h.Order.KitchenBoard).Methods("GET")

	// Menu management
	protected.HandleFunc("/menu/categories", h.Menu.CreateCategory).Methods("POST")
	protected.HandleFunc("/menu/items", h.Menu.CreateItem).Methods("POST")
	protected.HandleFunc("/menu/items/{id}", h.Menu.UpdateItem).Methods("PUT")
	protected.HandleFunc("/menu/items/{id}", h.Menu.DeleteItem).Methods("DELETE")
	protected.HandleFunc("/menu/items/{id}/image", h.Menu.UploadImage).Methods("POST")

	// Tables and QR codes
	protected.HandleFunc("/tables", h.Table.Create).Methods("POST")
	protected.HandleFunc("/tables/{restaurantId}", h.Table.List).Methods("GET")
	protected.HandleFunc("/tables/{id}/active", h.Table.SetActive).Methods("PATCH")

	// Customers and khata ledgers
	protected.HandleFunc("/customers", h.Khata.UpsertCustomer).Methods("POST")
	protected.HandleFunc("/customers/{restaurantId}", h.Khata.ListCustomers).Methods("GET")
	protected.HandleFunc("/customers/{customerId}/khata", h.Khata.RecordTransaction).Methods("POST")
	protected.HandleFunc("/customers/{customerId}/khata", h.Khata.Ledger).Methods("GET")

	// Offers
	protected.HandleFunc("/offers", h.Offer.Create).Methods("POST")
	protected.HandleFunc("/offers/{restaurantId}", h.Offer.ListAll).Methods("GET")
	protected.HandleFunc("/offers/{id}/active", h.Offer.SetActive).Methods("PATCH")

	// Vendors and purchases
	protected.HandleFunc("/vendors", h.Vendor.Create).Methods("POST")
	protected.HandleFunc("/vendors/{vendorId}/payable", h.Vendor.Payable).Methods("GET")
	protected.HandleFunc("/vendors/{restaurantId}", h.Vendor.List).Methods("GET")
	protected.HandleFunc("/purchases", h.Vendor.RecordPurchase).Methods("POST")
	protected.HandleFunc("/purchases/{restaurantId}", h.Vendor.ListPurchases).Methods("GET")

	// Inventory: stock items, the movement ledger, cancellations
	protected.HandleFunc("/inventory/items", h.Inv.CreateItem).Methods("POST")
	protected.HandleFunc("/inventory/items/{id}", h.Inv.UpdateItem).Methods("PUT")
	protected.HandleFunc("/inventory/items/{id}", h.Inv.DeleteItem).Methods("DELETE")
	protected.HandleFunc("/inventory/movements", h.Inv.RecordMovement).Methods("POST")
	protected.HandleFunc("/inventory/movements/{restaurantId}", h.Inv.ListMovements).Methods("GET")
	protected.HandleFunc("/inventory/alerts/{restaurantId}", h.Inv.LowStock).Methods("GET")
	protected.HandleFunc("/inventory/{restaurantId}", h.Inv.ListItems).Methods("GET")
	protected.HandleFunc("/cancellations", h.Inv.LogCancellation).Methods("POST")
	protected.HandleFunc("/cancellations/{restaurantId}", h.Inv.ListCancellations).Methods("GET")

	// Counter payments
	protected.HandleFunc("/payments", h.Payment.Record).Methods("POST")
	protected.HandleFunc("/payments/order/{orderId}", h.Payment.ListByOrder).Methods("GET")

	// Staff management and payroll, admins and managers only
	manage := protected.PathPrefix("/").Subrouter()
	manage.Use(authMW.RequireRole("admin", "manager"))

	manage.HandleFunc("/staff", h.Staff.Create).Methods("POST")
	manage.HandleFunc("/staff/restaurant/{restaurantId}", h.Staff.List).Methods("GET")
	manage.HandleFunc("/staff/{id}", h.Staff.Get).Methods("GET")
	manage.HandleFunc("/staff/{id}", h.Staff.Update).Methods("PUT")
	manage.HandleFunc("/staff/{id}", h.Staff.Delete).Methods("DELETE")

	manage.HandleFunc("/advances", h.Staff.CreateAdvance).Methods("POST")
	manage.HandleFunc("/advances/balance/{staffId}", h.Staff.AdvanceBalance).Methods("GET")
	manage.HandleFunc("/advances/{restaurantId}", h.Staff.ListAdvances).Methods("GET")

	manage.HandleFunc("/attendance/upsert", h.Attend.Upsert).Methods("POST")
	manage.HandleFunc("/attendance/staff/{staffId}", h.Attend.ListMonth).Methods("GET")
	manage.HandleFunc("/attendance/{restaurantId}", h.Attend.ListByDate).Methods("GET")

	manage.HandleFunc("/payroll/generate", h.Payroll.Generate).Methods("POST")
	manage.HandleFunc("/payroll/generate/{restaurantId}/{month}", h.Payroll.GenerateAll).Methods("POST")
	manage.HandleFunc("/payroll/mark-paid/{payrollId}", h.Payroll.MarkPaid).Methods("POST")
	manage.HandleFunc("/payroll/{restaurantId}/{month}", h.Payroll.List).Methods("GET")

	manage.HandleFunc("/reports/payslip/{staffId}/{month}", h.Report.Payslip).Methods("GET")

	// System stats for the admin dashboard
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.RequireAdmin)
	admin.HandleFunc("/stats", monitor.Handler).Methods("GET")

	return r
}
