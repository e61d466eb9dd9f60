package invoices

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse marks invoice text whose fields are missing or invalid.
var ErrParse = errors.New("invoice parse error")

const (
	vendorMarker  = "Vendor:"
	amountMarker  = "Amount:"
	dueDateMarker = "Due Date:"

	dueDateLayout = "2006-01-02"
)

// Fields is the structured result of parsing invoice text.
type Fields struct {
	Vendor  string
	Amount  float64
	DueDate time.Time
}

// ParseFields scans invoice text line by line for the Vendor, Amount, and
// Due Date markers. Markers are case-sensitive and the last occurrence of a
// marker wins. All three fields are required.
func ParseFields(text string) (Fields, error) {
	var (
		vendor  string
		amount  string
		dueDate string

		hasVendor  bool
		hasAmount  bool
		hasDueDate bool
	)

	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, vendorMarker); idx >= 0 {
			vendor = strings.TrimSpace(line[idx+len(vendorMarker):])
			hasVendor = true
			continue
		}
		if idx := strings.Index(line, amountMarker); idx >= 0 {
			amount = strings.TrimSpace(line[idx+len(amountMarker):])
			hasAmount = true
			continue
		}
		if idx := strings.Index(line, dueDateMarker); idx >= 0 {
			dueDate = strings.TrimSpace(line[idx+len(dueDateMarker):])
			hasDueDate = true
		}
	}

	if !hasVendor {
		return Fields{}, fmt.Errorf("%w: vendor not found", ErrParse)
	}
	if !hasAmount {
		return Fields{}, fmt.Errorf("%w: amount not found", ErrParse)
	}
	if !hasDueDate {
		return Fields{}, fmt.Errorf("%w: due date not found", ErrParse)
	}

	parsedAmount, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return Fields{}, fmt.Errorf("%w: invalid amount %q", ErrParse, amount)
	}
	parsedDueDate, err := time.Parse(dueDateLayout, dueDate)
	if err != nil {
		return Fields{}, fmt.Errorf("%w: invalid due date %q", ErrParse, dueDate)
	}

	return Fields{Vendor: vendor, Amount: parsedAmount, DueDate: parsedDueDate}, nil
}
