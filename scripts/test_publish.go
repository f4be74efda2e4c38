// +build ignore

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

type VoteCastEvent struct {
	HouseID  int64     `json:"house_id"`
	UserID   string    `json:"user_id"`
	VoteDate string    `json:"vote_date"`
	CastAt   time.Time `json:"cast_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	houseID := flag.Int64("house", 6, "House ID to vote for")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие голосования
	now := time.Now()
	event := VoteCastEvent{
		HouseID:  *houseID,
		UserID:   uuid.New().String(),
		VoteDate: now.Format("2006-01-02"),
		CastAt:   now,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:votes:cast",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:votes:cast\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   House ID: %d\n", event.HouseID)
	fmt.Printf("   User ID: %s\n", event.UserID)
	fmt.Printf("   Vote date: %s\n", event.VoteDate)
	fmt.Printf("\n⏳ Watch the rank worker logs for the recompute pass\n")
}
