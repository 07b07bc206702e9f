// Package report lays out a month's summary as a printable statement.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go-shopbook/internal/period"
	reporterrors "go-shopbook/internal/report/errors"
	"go-shopbook/internal/summary"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type RowKind string

const (
	RowPayout  RowKind = "payout"
	RowExpense RowKind = "expense"
	RowTotal   RowKind = "total"
)

const (
	ColumnDescription = "Description"
	ColumnAmount      = "Amount (INR)"

	TotalExpensesLabel = "TOTAL EXPENSES"
	TotalSalesLabel    = "TOTAL SALES"
	NetProfitLabel     = "NET PROFIT"
)

// Row is one printed line. Name is the staff name, item name or total label;
// Description is what appears in the Description column.
type Row struct {
	Kind        RowKind         `json:"kind"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type Document struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Columns  [2]string `json:"columns"`
	Rows     []Row     `json:"rows"`
}

var amountPrinter = message.NewPrinter(language.English)

// FormatReport lays out s as given: staff payouts, then expense lines, then
// the three totals. It does not compute or round; pass summary.Present(s) for
// a printed statement. All text must be printable in the Windows-1252
// (WinAnsi) encoding of the statement fonts.
func FormatReport(shopName, periodLabel string, s summary.PeriodSummary) (Document, error) {
	p, err := period.ParseLabel(periodLabel)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %q", reporterrors.ErrInvalidPeriodLabel, periodLabel)
	}

	doc := Document{
		Title:    strings.ToUpper(strings.TrimSpace(shopName)),
		Subtitle: "Monthly Statement: " + p.Title(),
		Columns:  [2]string{ColumnDescription, ColumnAmount},
		Rows:     make([]Row, 0, len(s.Payouts)+len(s.ExpenseLines)+3),
	}

	for _, pay := range s.Payouts {
		doc.Rows = append(doc.Rows, Row{
			Kind:        RowPayout,
			Name:        pay.Name,
			Description: fmt.Sprintf("%s (Sal: %s + Inc: %s)", pay.Name, FormatAmount(pay.ProratedSalary), FormatAmount(pay.Incentive)),
			Amount:      pay.NetPayout,
		})
	}
	for _, line := range s.ExpenseLines {
		doc.Rows = append(doc.Rows, Row{
			Kind:        RowExpense,
			Name:        line.ItemName,
			Description: line.ItemName,
			Amount:      line.Amount,
		})
	}
	doc.Rows = append(doc.Rows,
		Row{Kind: RowTotal, Name: TotalExpensesLabel, Description: TotalExpensesLabel, Amount: s.TotalExpenses},
		Row{Kind: RowTotal, Name: TotalSalesLabel, Description: TotalSalesLabel, Amount: s.TotalSales},
		Row{Kind: RowTotal, Name: NetProfitLabel, Description: NetProfitLabel, Amount: s.NetProfit},
	)

	if err := doc.checkEncodable(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

func (d Document) checkEncodable() error {
	texts := []string{d.Title, d.Subtitle, d.Columns[0], d.Columns[1]}
	for _, r := range d.Rows {
		texts = append(texts, r.Description)
	}

	for _, t := range texts {
		if !printable(t) {
			return fmt.Errorf("%w: %q", reporterrors.ErrUnencodableText, t)
		}
	}
	return nil
}

// printable rejects control characters as well, since the C1 range passes
// the Windows-1252 encoder but has no WinAnsi glyph.
func printable(text string) bool {
	for _, r := range text {
		if unicode.IsControl(r) {
			return false
		}
	}
	_, err := charmap.Windows1252.NewEncoder().String(text)
	return err == nil
}

// FormatAmount groups the integer digits in thousands and keeps any fraction
// as is: 27500 -> "27,500", -1234.5 -> "-1,234.5".
func FormatAmount(d decimal.Decimal) string {
	intStr, frac, _ := strings.Cut(d.String(), ".")
	neg := strings.HasPrefix(intStr, "-")
	intStr = strings.TrimPrefix(intStr, "-")

	grouped := intStr
	if n, err := strconv.ParseInt(intStr, 10, 64); err == nil {
		grouped = amountPrinter.Sprintf("%d", n)
	}

	out := grouped
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
