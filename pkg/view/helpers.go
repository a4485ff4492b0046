package view

import (
	"fmt"
	"time"
)

// Money renders an amount the way the dashboard shows prices: "$12.50".
// Amounts come off the wire as plain JSON numbers and are never
// computed on, only displayed.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatDate renders a timestamp in the fixed en-US long form used on
// order cards, e.g. "Jan 2, 2006, 03:04 PM".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// StatusClass maps an order status to its badge style tag. Unknown
// values get an empty tag; the status set is closed but the server is
// trusted data.
func StatusClass(status string) string {
	switch status {
	case "pending":
		return "status-pending"
	case "processing":
		return "status-processing"
	case "shipped":
		return "status-shipped"
	case "delivered":
		return "status-delivered"
	case "cancelled":
		return "status-cancelled"
	default:
		return ""
	}
}

// ShortID shows the tail of a long object id, like "Order #a1b2c3".
func ShortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
