// Package moneyfmt renders amounts for people: locale digit grouping and the precision of the currency.
package moneyfmt

import (
	"strings"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats amounts and labels for one locale.
type Formatter struct {
	printer *message.Printer
	caser   cases.Caser
	decimal string
}

// New returns a formatter for tag, e.g. language.English or language.Vietnamese.
func New(tag language.Tag) *Formatter {
	p := message.NewPrinter(tag)
	sep := "."
	if s := p.Sprintf("%.1f", 1.5); len(s) == 3 {
		sep = s[1:2]
	}
	return &Formatter{printer: p, caser: cases.Title(tag), decimal: sep}
}

// Precision is the number of minor digits shown for c.
func Precision(c domain.Currency) int32 {
	if c == domain.VND {
		return 0
	}
	return 2
}

// Number formats d rounded to places with locale grouping.
func (f *Formatter) Number(d decimal.Decimal, places int32) string {
	rounded := d.Round(places)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	whole := rounded.Truncate(0)
	out := sign + f.printer.Sprintf("%d", whole.IntPart())
	if places > 0 {
		frac := rounded.Sub(whole).StringFixed(places)
		out += f.decimal + frac[strings.IndexByte(frac, '.')+1:]
	}
	return out
}

// Amount formats d in currency c, e.g. "1,250,000 VND" or "12.50 USD".
func (f *Formatter) Amount(d decimal.Decimal, c domain.Currency) string {
	return f.Number(d, Precision(c)) + " " + string(c)
}

// Label turns an identifier such as "ad_account" into "Ad Account".
func (f *Formatter) Label(id string) string {
	return f.caser.String(strings.ReplaceAll(id, "_", " "))
}
