package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"worktime/internal/domain/employee"
)

// GeneratePayslipPDF renders a payslip for a generated line item and returns
// the file path.
func (s *Service) GeneratePayslipPDF(ctx context.Context, itemID, outputDir string) (string, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return "", err
	}
	emp, err := s.employees.GetEmployee(ctx, item.EmployeeID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(outputDir, item.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s", emp.FirstName, emp.LastName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", emp.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", item.Period))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay type: %s", item.PayType))
	pdf.Ln(10)
	if item.PayType == employee.SalaryTypeHourly {
		pdf.Cell(0, 8, fmt.Sprintf("Timesheet hours: %s", item.TimesheetHours.StringFixed(2)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s %s", item.GrossPay.StringFixed(2), item.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %s %s", item.NetPay.StringFixed(2), item.Currency))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
