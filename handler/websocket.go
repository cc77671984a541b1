package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"wedding_rsvp/config"
	"wedding_rsvp/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const rsvpChannel = "rsvp:new"

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	feedClients = make(map[*websocket.Conn]bool)
	feedMu      sync.Mutex
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// PublishRSVP pushes a freshly created entry onto the live feed channel.
// Failures only cost the live update, never the submission itself.
func PublishRSVP(entry model.RSVPEntry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		log.Printf("rsvp feed: marshal failed: %v", err)
		return
	}
	if err := getRedis().Publish(context.Background(), rsvpChannel, payload).Err(); err != nil {
		log.Printf("rsvp feed: publish failed: %v", err)
	}
}

// RSVPFeed streams new RSVP entries to the admin dashboard.
func RSVPFeed(c *websocket.Conn) {
	defer func() {
		feedMu.Lock()
		delete(feedClients, c)
		feedMu.Unlock()
		c.Close()
	}()

	feedMu.Lock()
	feedClients[c] = true
	feedMu.Unlock()

	pubsub := getRedis().Subscribe(context.Background(), rsvpChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		feedMu.Lock()
		for conn := range feedClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(feedClients, conn)
			}
		}
		feedMu.Unlock()
	}
}
