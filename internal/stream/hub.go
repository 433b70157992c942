package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans user-scoped update events out to connected clients. The client
// renders local data first and patches in late-arriving results (remote
// profile data, recommendation appends) as they are published here.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Email string
	Send  chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(email string) *Client {
	client := &Client{
		Email: email,
		Send:  make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[email] == nil {
		h.clients[email] = map[*Client]struct{}{}
	}
	h.clients[email][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if userClients, ok := h.clients[client.Email]; ok {
		delete(userClients, client)
		if len(userClients) == 0 {
			delete(h.clients, client.Email)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(email string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[email]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(email), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "updates:*:events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		email := emailFromChannel(msg.Channel)
		h.mu.RLock()
		clients := h.clients[email]
		h.mu.RUnlock()
		for client := range clients {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
	}
}

func redisChannel(email string) string {
	return "updates:" + email + ":events"
}

func emailFromChannel(ch string) string {
	// updates:{email}:events
	const prefix = "updates:"
	const suffix = ":events"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
