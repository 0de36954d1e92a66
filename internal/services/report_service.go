package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/timeutil"
)

// ReportService renders printable PDFs for bills and payslips
type ReportService struct {
	orderRepo   *repositories.OrderRepository
	tableRepo   *repositories.TableRepository
	staffRepo   *repositories.StaffRepository
	payrollRepo *repositories.PayrollRepository
}

func NewReportService(
	orderRepo *repositories.OrderRepository,
	tableRepo *repositories.TableRepository,
	staffRepo *repositories.StaffRepository,
	payrollRepo *repositories.PayrollRepository,
) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
		staffRepo:   staffRepo,
		payrollRepo: payrollRepo,
	}
}

// GenerateBillPDF renders a printable bill for one order
func (s *ReportService) GenerateBillPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.tableRepo.GetRestaurant(ctx, order.RestaurantID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, restaurant.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if restaurant.Address != "" {
		pdf.CellFormat(190, 6, restaurant.Address, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Order info
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Bill", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Order: %s", order.ID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Type: %s", order.OrderType), "RB", 1, "L", false, 0, "")
	customer := order.CustomerName
	if customer == "" {
		customer = "Walk-in"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Customer: %s", customer), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", timeutil.ToIST(order.CreatedAt).Format(timeutil.DisplayLayout)), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Portion", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range order.Items {
		name := item.ItemName
		if len(name) > 38 {
			name = name[:35] + "..."
		}
		pdf.CellFormat(80, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, item.Portion, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", item.PriceAtTime), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("Rs. %.2f", item.PriceAtTime*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(190, 10, fmt.Sprintf("Total: Rs. %.2f", order.TotalAmount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePayslipPDF renders a payslip from the stored payroll record
func (s *ReportService) GeneratePayslipPDF(ctx context.Context, staffID, month string) ([]byte, error) {
	staff, err := s.staffRepo.Get(ctx, staffID)
	if err != nil {
		return nil, err
	}
	restaurant, err := s.tableRepo.GetRestaurant(ctx, staff.RestaurantID)
	if err != nil {
		return nil, err
	}
	records, err := s.payrollRepo.ListByRestaurantMonth(ctx, staff.RestaurantID, month)
	if err != nil {
		return nil, err
	}
	var rec *models.PayrollRecord
	for _, r := range records {
		if r.StaffID == staffID {
			rec = r
			break
		}
	}
	if rec == nil {
		return nil, fmt.Errorf("no payroll record for staff %s in %s", staffID, month)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, restaurant.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(190, 8, fmt.Sprintf("Payslip - %s", month), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Employee", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", staff.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Role: %s", staff.Role), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Salary Type: %s", staff.SalaryType), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Base: Rs. %.2f", rec.BaseSalarySnapshot), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Attendance summary
	sum := rec.AttendanceSummary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Attendance", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(47, 8, fmt.Sprintf("Present: %d", sum.Present), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 8, fmt.Sprintf("Absent: %d", sum.Absent), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Half Days: %d", sum.HalfDay), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 8, fmt.Sprintf("Leave: %d", sum.Leave), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Pay Summary", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 8, fmt.Sprintf("Deductions: Rs. %.2f", rec.Deductions), "1", 0, "C", false, 0, "")
	pdf.CellFormat(95, 8, fmt.Sprintf("Status: %s", rec.Status), "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(200, 255, 200)
	pdf.CellFormat(190, 10, fmt.Sprintf("Net Payable: Rs. %.2f", rec.FinalAmount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
