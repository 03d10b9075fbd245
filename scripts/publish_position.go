//go:build ignore

// Manual utility: publishes position samples to the tracking stream so the
// geofence worker can be exercised without a mobile client.
//
//	go run scripts/publish_position.go -redis localhost:6379 -lat 6.2001 -lng -75.5785 -speed 0.5
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type positionSample struct {
	SessionID string   `json:"session_id"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Speed     *float64 `json:"speed,omitempty"`
	Accuracy  float64  `json:"accuracy"`
	Timestamp int64    `json:"timestamp"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	session := flag.String("session", "", "Session id (random when empty)")
	lat := flag.Float64("lat", 6.2001, "Latitude")
	lng := flag.Float64("lng", -75.5785, "Longitude")
	speed := flag.Float64("speed", 0.5, "Speed in m/s (negative for unknown)")
	accuracy := flag.Float64("accuracy", 8, "Accuracy in meters")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	if *session == "" {
		*session = uuid.New().String()
	}

	sample := positionSample{
		SessionID: *session,
		Lat:       *lat,
		Lng:       *lng,
		Accuracy:  *accuracy,
		Timestamp: time.Now().UnixMilli(),
	}
	if *speed >= 0 {
		sample.Speed = speed
	}

	data, err := json.Marshal(sample)
	if err != nil {
		log.Fatalf("Failed to marshal sample: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:tracking:positions",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish sample: %v", err)
	}

	fmt.Printf("Published sample %s for session %s\n", result, sample.SessionID)
}
