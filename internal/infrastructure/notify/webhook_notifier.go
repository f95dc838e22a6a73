package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"kampung_chill/internal/domain/entities"
	"kampung_chill/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const businessName = "AIR BATU MALAYSIA / ICE LOLLY MALAYSIA"

// WebhookNotifier posts a small JSON message for every freshly placed order
// to a configured webhook (chat hook, dashboard bridge, whatever staff
// points it at). Unconfigured or failing delivery degrades to a no-op; a
// missed notification must never affect the order flow.

type WebhookNotifier struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

var _ interfaces.IOrderNotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string, log *logrus.Logger) *WebhookNotifier {
	if url == "" {
		log.Infof("[shop][notify] ORDER_WEBHOOK_URL not set, order notifications disabled")
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

type orderNotification struct {
	Title   string  `json:"title"`
	Body    string  `json:"body"`
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

func (n *WebhookNotifier) OrderPlaced(order entities.Order) {
	if n.url == "" {
		return
	}

	payload, err := json.Marshal(orderNotification{
		Title:   fmt.Sprintf("%s: New Order!", businessName),
		Body:    fmt.Sprintf("Order #%s - %s ($%.2f)", order.ID, order.CustomerName, order.Total),
		OrderID: order.ID,
		Total:   order.Total,
	})
	if err != nil {
		n.log.Warnf("[shop][notify] payload marshal failed order=%s err=%v", order.ID, err)
		return
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		n.log.Warnf("[shop][notify] webhook delivery failed order=%s err=%v", order.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.Warnf("[shop][notify] webhook returned status=%d order=%s", resp.StatusCode, order.ID)
		return
	}
	n.log.Debugf("[shop][notify] order notification delivered order=%s", order.ID)
}
