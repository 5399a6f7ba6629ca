package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/catalog"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/config"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/logging"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/purchase"
	"github.com/alizaqureshi939-lab/Lafz-Box/internal/security/password"
	fsstore "github.com/alizaqureshi939-lab/Lafz-Box/internal/store/firestore"
	storage "github.com/alizaqureshi939-lab/Lafz-Box/internal/storage/s3"
)

const snapshotWait = 15 * time.Second

// app is the terminal front end: navigation, prompts and printing only. All
// invariants live in the catalog and the purchase workflow.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	cat      *catalog.Catalog
	wf       *purchase.Workflow
	gate     *password.Gate
	artifact *storage.Client // nil when S3 is not configured

	in            *bufio.Scanner
	authenticated bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := fsstore.New(ctx, fsstore.Config{
		ProjectID:       cfg.Firestore.ProjectID,
		CredentialsFile: cfg.Firestore.CredentialsFile,
	}, log)
	if err != nil {
		log.Fatal("connect to store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, login throttling disabled", zap.Error(err))
			rdb = nil
		}
	}

	var artifact *storage.Client
	if cfg.Storage.Enabled() {
		artifact, err = storage.New(ctx, storage.Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			Bucket:          cfg.Storage.Bucket,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			log.Fatal("artifact storage", zap.Error(err))
		}
	}

	cat := catalog.New(store, log)
	go func() {
		if err := cat.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("catalog subscription stopped", zap.Error(err))
		}
	}()

	a := &app{
		cfg: cfg,
		log: log,
		cat: cat,
		wf: purchase.New(log, purchase.Options{
			ProcessingDelay: cfg.Purchase.ProcessingDelay,
			SuccessDelay:    cfg.Purchase.SuccessDelay,
		}),
		gate:     password.NewGate(cfg.Admin.PINHash, cfg.Admin.PIN, rdb, cfg.Admin.MaxAttempts, cfg.Admin.AttemptWindow, log),
		artifact: artifact,
		in:       bufio.NewScanner(os.Stdin),
	}

	fmt.Println("Loading Lafz-Box Library...")
	a.waitReady(ctx)
	a.run(ctx)
}

// waitReady blocks until the first snapshot lands, the deadline passes, or
// the app is interrupted.
func (a *app) waitReady(ctx context.Context) {
	deadline := time.After(snapshotWait)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			fmt.Println("Still waiting for the library; showing what we have.")
			return
		case <-tick.C:
			if a.cat.Ready() {
				return
			}
		}
	}
}

func (a *app) run(ctx context.Context) {
	for ctx.Err() == nil {
		fmt.Println()
		fmt.Println("=== Lafz-Box ===")
		fmt.Println("1) Free reads")
		fmt.Println("2) Premium library")
		fmt.Println("3) Owner dashboard")
		fmt.Println("q) Quit")

		switch a.prompt("> ") {
		case "1":
			a.freeReads(ctx)
		case "2":
			a.premiumLibrary(ctx)
		case "3":
			a.adminDashboard(ctx)
		case "q", "Q":
			return
		}
	}
}

// prompt reads one trimmed line; EOF reads as empty.
func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// confirm requires a literal "yes" for irreversible actions.
func (a *app) confirm(label string) bool {
	return a.prompt(label+" Type yes to continue: ") == "yes"
}
