package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"boutique_back_end/internal/models"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	clientBuffer = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// la page peut être servie depuis une autre origine (voir CORS_ORIGINS)
		return true
	},
}

type wsClient struct {
	id   string
	send chan models.View
}

// Hub diffuse chaque nouvelle vue à tous les navigateurs connectés
type Hub struct {
	mu      sync.Mutex
	clients map[string]*wsClient
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*wsClient)}
}

// Broadcast est branché sur store.State.Subscribe. Un client trop lent
// perd la vue intermédiaire ; il recevra la suivante.
func (hub *Hub) Broadcast(v models.View) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for _, cl := range hub.clients {
		select {
		case cl.send <- v:
		default:
			log.Printf("⚠️ Client WebSocket %s saturé, vue ignorée", cl.id)
		}
	}
}

func (hub *Hub) Count() int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.clients)
}

func (hub *Hub) add() *wsClient {
	cl := &wsClient{id: uuid.NewString(), send: make(chan models.View, clientBuffer)}
	hub.mu.Lock()
	hub.clients[cl.id] = cl
	hub.mu.Unlock()
	return cl
}

func (hub *Hub) remove(cl *wsClient) {
	hub.mu.Lock()
	delete(hub.clients, cl.id)
	hub.mu.Unlock()
}

// GET /ws : envoie la vue courante puis chaque rendu suivant
func (h *Handler) StorefrontWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	cl := h.Hub.add()
	defer h.Hub.remove(cl)

	// lecture : uniquement pour détecter la fermeture côté navigateur
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeView(conn, h.State.View()); err != nil {
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case v := <-cl.send:
			if err := writeView(conn, v); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeView(conn *websocket.Conn, v models.View) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(gin.H{"type": "storefront", "view": v})
}
