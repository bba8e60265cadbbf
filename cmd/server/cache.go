package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-trainer/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-trainer/internal/repositories/catalog"
)

var cacheDelete bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the catalog cache",
}

var cacheCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Find cached slot documents that can no longer be read",
	Long: `Scan the redis catalog cache for entries that fail to decode.
With --delete the corrupted entries are removed and refetched on the next load.`,
	RunE: runCacheCheck,
}

func init() {
	cacheCheckCmd.Flags().BoolVar(&cacheDelete, "delete", false, "delete corrupted entries")
	cacheCmd.AddCommand(cacheCheckCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheCheck(cmd *cobra.Command, args []string) error {
	cfg, logCloser, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	if len(cfg.Redis.Endpoints) == 0 {
		return fmt.Errorf("no redis endpoints configured, the catalog cache lives in memory")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, cfg.Redis.Endpoints, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() { _ = client.Close() }()

	out, err := catalogrepo.CheckRedis(ctx, client)
	if err != nil {
		return err
	}

	fmt.Printf("checked %d entries, found %d corrupted\n", out.Checked, len(out.Corrupted))
	if len(out.Corrupted) == 0 {
		return nil
	}

	keys := make([]string, 0, len(out.Corrupted))
	for _, c := range out.Corrupted {
		fmt.Printf("  - %s: %s\n", c.Key, c.Reason)
		keys = append(keys, c.Key)
	}

	if !cacheDelete {
		fmt.Println("run with --delete to remove them")
		return nil
	}

	removed, err := catalogrepo.DeleteKeys(ctx, client, keys)
	if err != nil {
		return err
	}
	fmt.Printf("deleted %d entries\n", removed)
	return nil
}
