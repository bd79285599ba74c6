package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"text/tabwriter"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/APVS-BRO/ai-careers-hub/internal/bootstrap"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
	"github.com/APVS-BRO/ai-careers-hub/internal/util"
)

const runKeyPattern = "agentrun:*"

type listRunsOptions struct {
	Limit int
}

type clearRunsOptions struct {
	Yes bool
}

func runListRuns(cmdCtx *commandContext, args []string) error {
	var opts listRunsOptions
	fs := flag.NewFlagSet("list-runs", flag.ContinueOnError)
	fs.IntVar(&opts.Limit, "limit", 50, "maximum runs to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	client, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	defer closeQuietly(cmdCtx.Logger, "redis", client)

	return printRunEntries(ctx, client, opts.Limit)
}

func printRunEntries(ctx context.Context, client redis.UniversalClient, limit int) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "RUN ID\tEVENT\tSTATUS\tUPDATED\tTTL\n"); err != nil {
		return err
	}

	printed := 0
	iter := client.Scan(ctx, 0, runKeyPattern, 100).Iterator()
	for iter.Next(ctx) && printed < limit {
		key := iter.Val()
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			continue // key may have expired between scan and get
		}
		var run model.Run
		if unmarshalErr := json.Unmarshal([]byte(data), &run); unmarshalErr != nil {
			continue
		}
		ttl := client.TTL(ctx, key).Val()
		if err = writef(w, "%s\t%s\t%s\t%s\t%s\n",
			run.ID, run.Event, run.Status,
			util.FormatTimestamp(run.UpdatedAt), util.FormatTTL(ttl)); err != nil {
			return err
		}
		printed++
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if printed == 0 {
		return writef(os.Stdout, "no local runs found\n")
	}
	return w.Flush()
}

func runClearRuns(cmdCtx *commandContext, args []string) error {
	var opts clearRunsOptions
	fs := flag.NewFlagSet("clear-runs", flag.ContinueOnError)
	fs.BoolVar(&opts.Yes, "yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !opts.Yes {
		return writef(os.Stderr, "refusing to clear run state without -yes\n")
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	client, err := bootstrap.ConnectRedis(bootstrap.DatabaseConfig{
		RedisConfig: cmdCtx.Config.Redis,
		Logger:      cmdCtx.Logger,
	})
	if err != nil {
		return err
	}
	defer closeQuietly(cmdCtx.Logger, "redis", client)

	deleted, err := deleteRunKeys(ctx, client)
	if err != nil {
		return err
	}

	// The queue holds task handles for runs that no longer exist; drop it too.
	queueKey := cmdCtx.Config.Agents.Dispatcher.QueueKey
	if queueKey != "" {
		if delErr := client.Del(ctx, queueKey).Err(); delErr != nil {
			return delErr
		}
	}

	return writef(os.Stdout, "deleted %d run keys and cleared the task queue\n", deleted)
}

func deleteRunKeys(ctx context.Context, client redis.UniversalClient) (int, error) {
	deleted := 0
	iter := client.Scan(ctx, 0, runKeyPattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, iter.Err()
}
