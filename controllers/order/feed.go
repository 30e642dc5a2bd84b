package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lumina-commerce/storefront-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed is the process-lifetime order journal. Every confirmed order lands
// here and is pushed to connected dashboard clients. Nothing is durable;
// a restart starts the journal over.
type Feed struct {
	mu      sync.Mutex
	orders  []models.Order
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

// Record journals a confirmed order and broadcasts it.
func (f *Feed) Record(order models.Order) {
	f.mu.Lock()
	f.orders = append(f.orders, order)
	f.mu.Unlock()

	f.broadcast(order)
}

// Orders returns a copy of the journal, newest last.
func (f *Feed) Orders() []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Order, len(f.orders))
	copy(out, f.orders)
	return out
}

// Stats returns the order count and gross revenue for the dashboard.
func (f *Feed) Stats() (count int, revenue float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range f.orders {
		revenue += o.Total
	}
	return len(f.orders), revenue
}

// GET /seller/orders/ws
func (f *Feed) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

func (f *Feed) broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
