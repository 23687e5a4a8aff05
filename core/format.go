package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/va6996/tripmate/catalog"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders resolver results as the text handed back to a chat model.
type Formatter struct {
	currency string
	printer  *message.Printer
}

// NewFormatter renders prices in the given ISO 4217 currency. Unknown codes
// are kept verbatim.
func NewFormatter(code string) *Formatter {
	code = strings.ToUpper(strings.TrimSpace(code))
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}
	if code == "" {
		code = catalog.DefaultCurrency
	}
	return &Formatter{
		currency: code,
		printer:  message.NewPrinter(language.English),
	}
}

// Price renders an amount such as "AUD 54" or "AUD 12.5".
func (f *Formatter) Price(amount float64) string {
	return fmt.Sprintf("%s %s", f.currency, f.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2))))
}

// Availability renders one resolution result.
func (f *Formatter) Availability(a Availability) string {
	switch a.Status {
	case StatusClosedWithAlternative:
		alt := a.Alternative
		return fmt.Sprintf("🚫 %s closed on %s.\n🔄 Alternative: %s (%s at %s)",
			a.Attraction.Name, a.Date, alt.Name, f.Price(alt.Price), alt.Location)
	case StatusClosedNoAlternative:
		return fmt.Sprintf("🚫 %s closed on %s.\nNo other attraction can be visited that day.", a.Attraction.Name, a.Date)
	default:
		return fmt.Sprintf("✅ %s is open - Price: %s, Location: %s", a.Attraction.Name, f.Price(a.Attraction.Price), a.Attraction.Location)
	}
}

// NotFound renders the valid-id list carried by a NotFoundError.
func (f *Formatter) NotFound(err *NotFoundError) string {
	return fmt.Sprintf("❌ '%s' not found. Available: %s", err.Identifier, strings.Join(err.ValidIDs, ", "))
}

// Attraction renders name, price and location, then the note and opening hours when present.
func (f *Formatter) Attraction(a catalog.Attraction) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - Price: %s, Location: %s", a.Name, f.Price(a.Price), a.Location)
	if a.Note != "" {
		fmt.Fprintf(&sb, ", Note: %s", a.Note)
	}
	if len(a.Hours) > 0 {
		keys := make([]string, 0, len(a.Hours))
		for k := range a.Hours {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		hours := make([]string, 0, len(keys))
		for _, k := range keys {
			hours = append(hours, fmt.Sprintf("%s %s", k, a.Hours[k]))
		}
		fmt.Fprintf(&sb, ", Hours: %s", strings.Join(hours, "; "))
	}
	return sb.String()
}

// Listing renders attractions one per line, in the order given.
func (f *Formatter) Listing(attractions []catalog.Attraction) string {
	lines := make([]string, 0, len(attractions))
	for _, a := range attractions {
		lines = append(lines, f.Attraction(a))
	}
	return strings.Join(lines, "\n")
}

// Suggestions renders an unknown-attraction reply that offers the whole catalog.
func (f *Formatter) Suggestions(err *NotFoundError, attractions []catalog.Attraction) string {
	return fmt.Sprintf("Sorry, I couldn't find '%s'. Here are some options you might like:\n%s", err.Identifier, f.Listing(attractions))
}
