package handler

import (
	"context"
	"cruise_manager/helper"
	"cruise_manager/logger"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	clients = make(map[string]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// ConnectedClients reports how many live feeds a user has open.
func ConnectedClients(userId string) int {
	mu.Lock()
	defer mu.Unlock()
	return len(clients[userId])
}

// MessageFeed streams the direct messages addressed to :userId as they are
// published on redis.
func MessageFeed(c *websocket.Conn) {
	userId := c.Params("userId")

	defer func() {
		mu.Lock()
		if clients[userId] != nil {
			delete(clients[userId], c)
			if len(clients[userId]) == 0 {
				delete(clients, userId)
			}
		}
		mu.Unlock()
		c.Close()
	}()

	if helper.Redis == nil {
		_ = c.WriteJSON(map[string]string{"error": "live messages are disabled"})
		return
	}

	mu.Lock()
	if clients[userId] == nil {
		clients[userId] = make(map[*websocket.Conn]bool)
	}
	clients[userId][c] = true
	mu.Unlock()

	// first frame: the current conversation list
	if conversations, err := conversationsOf(userId); err == nil {
		_ = c.WriteJSON(map[string]interface{}{"type": "conversations", "data": conversations})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := helper.Redis.Subscribe(ctx, helper.MessageChannel(userId))
	defer pubsub.Close()

	// the read loop only notices the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				logger.Debug("message feed closed", "user", userId, "error", err)
				return
			}
		}
	}
}
