package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	redis "github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-trainer/internal/redis"
)

// Corruption is a cached entry that Get could not serve
type Corruption struct {
	Key    string
	Reason string
}

// CheckOutput reports the result of a cache scan
type CheckOutput struct {
	Checked   int
	Corrupted []Corruption
}

// CheckRedis scans every cached slot document and reports the entries that
// no longer decode into a usable document.
func CheckRedis(ctx context.Context, client redisclient.Client) (*CheckOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	keys, err := scanKeys(ctx, client, slotKeyPrefix+"*")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan catalog keys")
	}

	out := &CheckOutput{}
	for _, key := range keys {
		raw, err := client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// expired between scan and read
			continue
		}
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", key)
		}

		out.Checked++
		if reason := inspect(key, raw); reason != "" {
			out.Corrupted = append(out.Corrupted, Corruption{Key: key, Reason: reason})
		}
	}

	return out, nil
}

// DeleteKeys removes the given keys and returns how many existed
func DeleteKeys(ctx context.Context, client redisclient.Client, keys []string) (int, error) {
	removed := 0
	for _, key := range keys {
		n, err := client.Del(ctx, key).Result()
		if err != nil {
			return removed, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to delete %s", key)
		}
		removed += int(n)
	}
	return removed, nil
}

func inspect(key string, raw []byte) string {
	var doc SlotDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "envelope is not valid JSON"
	}
	if !osrs.IsEquipmentSlot(doc.Slot) {
		return "unknown slot " + string(doc.Slot)
	}
	if strings.TrimPrefix(key, slotKeyPrefix) != string(doc.Slot) {
		return "stored under the wrong slot"
	}
	if !gjson.ValidBytes(doc.Document) || !gjson.ParseBytes(doc.Document).IsObject() {
		return "document is not a JSON object"
	}
	return ""
}

func scanKeys(ctx context.Context, client redisclient.Client, pattern string) ([]string, error) {
	cluster, ok := client.(*redis.ClusterClient)
	if !ok {
		return scanNode(ctx, client, pattern)
	}

	var (
		keys []string
		mu   sync.Mutex
	)
	err := cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
		found, err := scanNode(ctx, node, pattern)
		if err != nil {
			return err
		}
		mu.Lock()
		keys = append(keys, found...)
		mu.Unlock()
		return nil
	})
	return keys, err
}

func scanNode(ctx context.Context, client redis.Cmdable, pattern string) ([]string, error) {
	var keys []string
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
