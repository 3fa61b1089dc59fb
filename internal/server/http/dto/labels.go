package dto

import "github.com/sel3a/sel3a/internal/domain/model"

// The UI the store operators use is Arabic, so responses carry a localized
// label next to each machine-readable status.
var orderStatusLabels = map[model.OrderStatus]string{
	model.OrderStatusPending:        "قيد الانتظار",
	model.OrderStatusConfirmed:      "مؤكد",
	model.OrderStatusPreparing:      "قيد التحضير",
	model.OrderStatusShipped:        "تم الشحن",
	model.OrderStatusOutForDelivery: "خرج للتوصيل",
	model.OrderStatusDelivered:      "تم التوصيل",
	model.OrderStatusCompleted:      "مكتمل",
	model.OrderStatusCancelled:      "ملغي",
	model.OrderStatusFailed:         "فشل",
}

var clientStatusLabels = map[model.ClientStatus]string{
	model.ClientStatusGood:    "عميل جيد",
	model.ClientStatusBad:     "عميل سيئ",
	model.ClientStatusTrusted: "موثوق",
}

// OrderStatusLabel returns the Arabic label for an order status, falling
// back to the raw status value.
func OrderStatusLabel(status model.OrderStatus) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return string(status)
}

// ClientStatusLabel returns the Arabic label for a client status.
func ClientStatusLabel(status model.ClientStatus) string {
	if label, ok := clientStatusLabels[status]; ok {
		return label
	}
	return string(status)
}
