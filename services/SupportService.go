package services

import (
	"tradehub/entities"
)

// The chat widget is an external collaborator loaded by the client; the
// support screen works whether or not a widget URL is configured.
type SupportService struct {
	widgetUrl string
}

func NewSupportService(widgetUrl string) SupportService {
	return SupportService{
		widgetUrl: widgetUrl,
	}
}

func (ss *SupportService) GetSupportInfo() (info entities.SupportInfo) {
	info = entities.SupportInfo{
		Faq:           faqItems,
		ChatAvailable: ss.widgetUrl != "",
		ChatWidgetUrl: ss.widgetUrl,
	}
	return
}

var faqItems = []entities.FaqItem{
	{
		Question: "What is MOQ and why can't I order fewer pieces?",
		Answer:   "MOQ is the minimum order quantity set by the supplier. Bulk pricing only applies from that quantity upward, so the cart will not accept less.",
	},
	{
		Question: "How do I track my order?",
		Answer:   "Open My Orders and select an active order to see its status and tracking id. Shipped orders include a courier tracking number.",
	},
	{
		Question: "Which payment methods are supported?",
		Answer:   "Cash on Delivery is available on all orders. Online payment options are coming soon.",
	},
	{
		Question: "When is shipping free?",
		Answer:   "Orders above ₹5,000 ship free. Below that a flat ₹99 shipping fee applies.",
	},
	{
		Question: "Can I change my delivery address after ordering?",
		Answer:   "Addresses can be managed from your profile. Orders already placed are delivered to the address chosen at checkout.",
	},
}
