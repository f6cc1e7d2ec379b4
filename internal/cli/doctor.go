package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/ppiankov/skyrecap/internal/cache"
	"github.com/ppiankov/skyrecap/internal/config"
	"github.com/ppiankov/skyrecap/internal/recap"
	"github.com/spf13/cobra"
)

const doctorTimeout = 15 * time.Second

var doctorCmd = &cobra.Command{
	Use:   "doctor [handle]",
	Short: "Check config, credentials, cache, and upstream reachability",
	Args:  cobra.MaximumNArgs(1),
	RunE:  doctorAction,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func doctorAction(cmd *cobra.Command, args []string) error {
	ok := true

	// Config dir
	if info, err := os.Stat(configDir); err != nil || !info.IsDir() {
		printCheck(false, "config directory %s", configDir)
		ok = false
	} else {
		printCheck(true, "config directory %s", configDir)
	}

	// Config file (a missing one still loads with defaults)
	cfg, err := config.Load(configDir)
	if err != nil {
		printCheck(false, "config.yaml: %v", err)
		return fmt.Errorf("doctor found problems")
	}
	printCheck(true, "config.yaml (service %s, cache ttl %s)", cfg.Bluesky.Service, cfg.Cache.TTL.Duration)

	// Credentials
	if cfg.Bluesky.Identifier == "" || cfg.Bluesky.Password == "" {
		printCheck(false, "credentials: set %s and %s", cfg.Bluesky.IdentifierEnv, cfg.Bluesky.PasswordEnv)
		ok = false
	} else {
		printCheck(true, "credentials present (%s)", cfg.Bluesky.IdentifierEnv)
	}

	// Cache database
	db, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		printCheck(false, "cache database: %v", err)
		ok = false
	} else {
		_ = db.Close()
		printCheck(true, "cache database %s", cfg.Cache.Path)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), doctorTimeout)
	defer cancel()

	// Service reachability (unauthenticated endpoint)
	if err := checkService(ctx, cfg.Bluesky.Service); err != nil {
		printCheck(false, "service %s: %v", cfg.Bluesky.Service, err)
		ok = false
	} else {
		printCheck(true, "service %s reachable", cfg.Bluesky.Service)
	}

	// Optional: verify a handle resolves via its public profile feed.
	if len(args) == 1 {
		handle := recap.NormalizeHandle(args[0])
		if err := checkProfileFeed(ctx, handle); err != nil {
			printCheck(false, "profile @%s: %v", handle, err)
			ok = false
		} else {
			printCheck(true, "profile @%s publicly visible", handle)
		}
	}

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkService(ctx context.Context, service string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		service+"/xrpc/com.atproto.server.describeServer", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

// checkProfileFeed parses the account's public RSS feed. It proves the
// handle resolves and the profile is visible without spending any
// authenticated request quota.
func checkProfileFeed(ctx context.Context, handle string) error {
	feed, err := gofeed.NewParser().ParseURLWithContext(
		"https://bsky.app/profile/"+handle+"/rss", ctx)
	if err != nil {
		return err
	}
	if feed.Title == "" {
		return fmt.Errorf("empty feed")
	}
	return nil
}
