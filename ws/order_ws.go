package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Bekfastjam/LocalBake/entity"
	"github.com/Bekfastjam/LocalBake/services"
)

// OrderHub fans order status changes out to websocket subscribers, one
// subscriber set per order id.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> set of clients
	broadcast  chan statusUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
}

type statusUpdate struct {
	OrderID uint
	Payload StatusMessage
}

// StatusMessage is the frame sent to subscribers on every status change.
type StatusMessage struct {
	OrderID   uint      `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewOrderHub(orders *services.OrderService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan statusUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

// Run serves register/unregister/broadcast until the process exits.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.OrderID] {
				if err := conn.WriteJSON(msg.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.StatusNotifier.
func (h *OrderHub) OrderStatusChanged(o *entity.Order) {
	h.broadcast <- statusUpdate{
		OrderID: o.ID,
		Payload: StatusMessage{OrderID: o.ID, Status: o.Status, UpdatedAt: time.Now()},
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	orderID := uint(id)

	if _, err := h.orders.Get(orderID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID}
	h.register <- sub

	// drain client frames; the feed is one-way
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
