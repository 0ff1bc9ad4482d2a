package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
)

const (
	itemIndex  = "items:directory"
	actorIndex = "actors"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for corrupted item and actor data...")

	var corrupted []string
	checked := 0

	for _, pattern := range []string{"item:*", "actor:*"} {
		iter := client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			key := iter.Val()
			checked++

			data, err := client.Get(ctx, key).Result()
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", key, err)
				continue
			}

			if problem := check(key, data); problem != "" {
				fmt.Printf("✗ %s: %s\n", key, problem)
				corrupted = append(corrupted, key)
			}
		}
		if err := iter.Err(); err != nil {
			log.Fatal("Error during scan:", err)
		}
	}

	// Index entries whose document is gone
	dangling := map[string][]string{}
	for index, prefix := range map[string]string{itemIndex: "item:", actorIndex: "actor:"} {
		ids, err := client.SMembers(ctx, index).Result()
		if err != nil {
			log.Fatal("Error reading index:", err)
		}
		for _, id := range ids {
			n, err := client.Exists(ctx, prefix+id).Result()
			if err != nil {
				fmt.Printf("Error checking %s%s: %v\n", prefix, id, err)
				continue
			}
			if n == 0 {
				fmt.Printf("✗ %s lists missing %s%s\n", index, prefix, id)
				dangling[index] = append(dangling[index], id)
			}
		}
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries and %d dangling index entries\n",
		checked, len(corrupted), len(dangling[itemIndex])+len(dangling[actorIndex]))

	if len(corrupted) == 0 && len(dangling) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corrupted {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	for index, ids := range dangling {
		for _, id := range ids {
			if err := client.SRem(ctx, index, id).Err(); err != nil {
				fmt.Printf("Failed to remove %s from %s: %v\n", id, index, err)
			} else {
				fmt.Printf("Removed %s from %s\n", id, index)
			}
		}
	}
	fmt.Println("\nCleanup complete!")
}

// check returns a description of what is wrong with a stored document, or
// an empty string
func check(key, data string) string {
	if strings.HasPrefix(key, "actor:") {
		var actor item.Actor
		if err := json.Unmarshal([]byte(data), &actor); err != nil {
			return "corrupted JSON"
		}
		if actor.ID == "" {
			return "actor without id"
		}
		for _, it := range actor.Items {
			if it == nil || it.ID == "" {
				return "owned item without id"
			}
		}
		return ""
	}

	var it item.Item
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		return "corrupted JSON"
	}
	if it.ID == "" {
		return "item without id"
	}
	if strings.TrimSpace(it.Type) == "" {
		return "item without type"
	}
	return ""
}
