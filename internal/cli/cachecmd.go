package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/skyrecap/internal/cache"
	"github.com/ppiankov/skyrecap/internal/config"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the recap cache",
}

var cacheInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List cached recaps and their expiry",
	RunE:  cacheInspectAction,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached recaps",
	RunE:  cacheClearAction,
}

func init() {
	cacheCmd.AddCommand(cacheInspectCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openCache() (*cache.SQLite, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	db, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return db, nil
}

func cacheInspectAction(cmd *cobra.Command, _ []string) error {
	db, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	entries, err := db.Entries(cmd.Context())
	if err != nil {
		return err
	}
	printEntries(os.Stdout, entries, time.Now())
	return nil
}

func printEntries(w io.Writer, entries []cache.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Cache is empty.")
		return
	}
	for _, e := range entries {
		state := "fresh"
		if e.Expired(now) {
			state = "expired"
		}
		fmt.Fprintf(w, "  @%s %d — %d bytes, updated %s, %s\n",
			e.Handle, e.Year, len(e.Data), e.UpdatedAt.Format(time.RFC3339), state)
	}
}

func cacheClearAction(cmd *cobra.Command, _ []string) error {
	db, err := openCache()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	n, err := db.Clear(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d cached recap(s).\n", n)
	return nil
}
