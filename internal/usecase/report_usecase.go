package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"lavajato/internal/domain/entities"
)

// OtherPaymentDetail itemizes a completed order settled via "Outros".
type OtherPaymentDetail struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// ReceivedTotals breaks down the money received from completed orders by
// payment method. Tip is tracked separately and excluded from Total.
type ReceivedTotals struct {
	Dinheiro float64 `json:"dinheiro"`
	Credito  float64 `json:"credito"`
	Debito   float64 `json:"debito"`
	Pix      float64 `json:"pix"`
	Outros   float64 `json:"outros"`
	Tip      float64 `json:"caixinha"`
	Total    float64 `json:"total"`
}

// DailyReport aggregates active and trashed orders plus the expense list into
// the figures shown on the end-of-day summary.
type DailyReport struct {
	Date          time.Time            `json:"date"`
	ServiceCount  int                  `json:"service_count"`
	Received      ReceivedTotals       `json:"received"`
	PendingTotal  float64              `json:"pending_total"`
	OtherPayments []OtherPaymentDetail `json:"other_payments,omitempty"`
	Expenses      []entities.Expense   `json:"expenses,omitempty"`
	ExpenseTotal  float64              `json:"expense_total"`
}

// IReportUseCase produces the daily summary and its WhatsApp rendering.

type IReportUseCase interface {
	Daily() DailyReport
	WhatsAppMessage() string
}

type ReportUseCase struct {
	orders      IServiceOrderUseCase
	expenses    IExpenseUseCase
	companyName string
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(orders IServiceOrderUseCase, expenses IExpenseUseCase, companyName string) *ReportUseCase {
	if strings.TrimSpace(companyName) == "" {
		companyName = "JJ Lava-Jato"
	}
	return &ReportUseCase{orders: orders, expenses: expenses, companyName: companyName}
}

// Daily recomputes everything from the current collections; trashed orders
// still count, matching the cash drawer (a trashed order was still served and
// paid).
func (u *ReportUseCase) Daily() DailyReport {
	all := append(u.orders.ActiveOrders(), u.orders.TrashedOrders()...)
	expenses := u.expenses.Expenses()

	report := DailyReport{
		Date:         time.Now(),
		ServiceCount: len(all),
		Expenses:     expenses,
	}

	for _, o := range all {
		if o.Status == entities.OrderStatusProcessada && o.PaymentMethod != "" {
			switch o.PaymentMethod {
			case entities.PaymentDinheiro:
				report.Received.Dinheiro += o.Total
			case entities.PaymentCredito:
				report.Received.Credito += o.Total
			case entities.PaymentDebito:
				report.Received.Debito += o.Total
			case entities.PaymentPix:
				report.Received.Pix += o.Total
			default:
				report.Received.Outros += o.Total
				desc := o.PaymentOtherDescription
				if desc == "" {
					desc = "Outro - não especificado"
				}
				report.OtherPayments = append(report.OtherPayments, OtherPaymentDetail{
					Description: desc,
					Amount:      o.Total,
				})
			}
			report.Received.Tip += o.TipAmount
		}
		if o.Status == entities.OrderStatusEmProcessamento && o.PaymentMethod == "" {
			report.PendingTotal += o.Total
		}
	}
	report.Received.Total = report.Received.Dinheiro +
		report.Received.Credito +
		report.Received.Debito +
		report.Received.Pix +
		report.Received.Outros

	for _, e := range expenses {
		report.ExpenseTotal += e.Amount
	}

	return report
}

// WhatsAppMessage renders the daily report as a WhatsApp-formatted text
// message (asterisk bold, pt-BR currency).
func (u *ReportUseCase) WhatsAppMessage() string {
	r := u.Daily()

	var b strings.Builder
	fmt.Fprintf(&b, "*RELATÓRIO DIÁRIO - %s*\n", strings.ToUpper(u.companyName))
	fmt.Fprintf(&b, "Data: %s\n\n", r.Date.Format("02/01/2006"))

	fmt.Fprintf(&b, "*Serviços Prestados:* %d\n\n", r.ServiceCount)

	b.WriteString("*Valores Recebidos:*\n")
	fmt.Fprintf(&b, "- Dinheiro: %s\n", FormatBRL(r.Received.Dinheiro))
	fmt.Fprintf(&b, "- Crédito: %s\n", FormatBRL(r.Received.Credito))
	fmt.Fprintf(&b, "- Débito: %s\n", FormatBRL(r.Received.Debito))
	fmt.Fprintf(&b, "- Código QR Pix: %s\n", FormatBRL(r.Received.Pix))
	fmt.Fprintf(&b, "- Caixinha: %s\n", FormatBRL(r.Received.Tip))
	fmt.Fprintf(&b, "- *Total:* %s\n\n", FormatBRL(r.Received.Total))

	if len(r.OtherPayments) > 0 {
		b.WriteString("*Pagamentos Alternativos (Outros):*\n")
		total := 0.0
		for _, d := range r.OtherPayments {
			fmt.Fprintf(&b, "- %s: %s\n", d.Description, FormatBRL(d.Amount))
			total += d.Amount
		}
		fmt.Fprintf(&b, "- *Total:* %s\n\n", FormatBRL(total))
	}

	if len(r.Expenses) > 0 {
		b.WriteString("*Gastos Diários:*\n")
		for _, e := range r.Expenses {
			fmt.Fprintf(&b, "- %s: %s\n", e.Description, FormatBRL(e.Amount))
		}
		fmt.Fprintf(&b, "- *Total de Gastos:* %s\n\n", FormatBRL(r.ExpenseTotal))
	}

	b.WriteString("Relatório gerado automaticamente.\n")
	b.WriteString(u.companyName)
	return b.String()
}

// FormatBRL formats a value as Brazilian currency: R$ 1.234,56.
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	out := "R$ " + grouped.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
