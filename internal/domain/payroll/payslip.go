package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BuildPayslipPDF renders the computed salary structure as a downloadable
// PDF. All monetary fields on the result are already rounded, so the
// document prints them as whole amounts.
func BuildPayslipPDF(employeeName, periodLabel string, result Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Structure")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if employeeName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
		pdf.Ln(7)
	}
	if periodLabel != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s", periodLabel))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Payment factor: %.2f", result.ProratedFactor))
	pdf.Ln(10)

	writeSection(pdf, "Earnings", earningLines(result.Monthly.Earnings))
	pdf.Ln(4)
	writeSection(pdf, "Deductions", deductionLines(result.Monthly.Deductions))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Gross Payable")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.0f", result.Monthly.GrossPayable), "", 1, "R", false, 0, "")
	pdf.Cell(120, 8, "Total Deductions")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.0f", result.Monthly.TotalDeductions), "", 1, "R", false, 0, "")
	pdf.Cell(120, 8, "Net Pay")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.0f", result.Monthly.NetPay), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Annual gross: %.0f    Annual net: %.0f    Projected tax: %.0f",
		result.Annual.Gross, result.Annual.NetPay, result.Annual.TaxProjected))

	if result.Flags.NegativeNet {
		pdf.Ln(8)
		pdf.SetTextColor(180, 0, 0)
		pdf.Cell(0, 7, "Warning: deductions exceed gross payable")
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, title string, lines []LineItem) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.Cell(120, 7, line.Name)
		pdf.CellFormat(40, 7, fmt.Sprintf("%.0f", line.Amount), "", 1, "R", false, 0, "")
	}
}

func earningLines(e Earnings) []LineItem {
	lines := []LineItem{
		{Name: "Basic", Amount: e.Basic},
		{Name: "House Rent Allowance", Amount: e.HRA},
		{Name: "Special Allowance", Amount: e.Special},
		{Name: "Conveyance", Amount: e.Conveyance},
		{Name: "Medical", Amount: e.Medical},
		{Name: "Lunch", Amount: e.Lunch},
	}
	return append(lines, e.Custom...)
}

func deductionLines(d Deductions) []LineItem {
	lines := []LineItem{
		{Name: "Provident Fund", Amount: d.ProvidentFund},
	}
	if d.VoluntaryPF > 0 {
		lines = append(lines, LineItem{Name: "Voluntary PF", Amount: d.VoluntaryPF})
	}
	lines = append(lines,
		LineItem{Name: "State Insurance", Amount: d.StateInsurance},
		LineItem{Name: "Professional Tax", Amount: d.ProfessionalTax},
		LineItem{Name: "Income Tax (TDS)", Amount: d.IncomeTax},
	)
	return append(lines, d.Custom...)
}
