package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/skyrecap/internal/bsky"
	"github.com/ppiankov/skyrecap/internal/cache"
	"github.com/ppiankov/skyrecap/internal/config"
	"github.com/ppiankov/skyrecap/internal/recap"
	"github.com/ppiankov/skyrecap/internal/render"
	"github.com/spf13/cobra"
)

var (
	genYear     int
	genTZOffset int
	genForce    bool
	genNoCache  bool
	genFormat   string
	genColor    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <handle>",
	Short: "Generate the year-in-review recap for a handle",
	Args:  cobra.ExactArgs(1),
	RunE:  generateAction,
}

func init() {
	generateCmd.Flags().IntVar(&genYear, "year", 0, "target year (default: current)")
	generateCmd.Flags().IntVar(&genTZOffset, "tz-offset", 0, "viewer timezone offset in minutes ahead of UTC (overrides config)")
	generateCmd.Flags().BoolVar(&genForce, "force", false, "regenerate even when a cached recap exists")
	generateCmd.Flags().BoolVar(&genNoCache, "no-cache", false, "skip the on-disk cache entirely")
	generateCmd.Flags().StringVar(&genFormat, "format", "terminal", "output format: terminal or json")
	generateCmd.Flags().BoolVar(&genColor, "color", true, "colorize terminal output")
	rootCmd.AddCommand(generateCmd)
}

func generateAction(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	initLogging(cfg.Log.Level)

	var formatter render.Formatter
	switch genFormat {
	case "terminal":
		formatter = render.NewTerminal(genColor)
	case "json":
		formatter = render.NewJSON()
	default:
		return fmt.Errorf("unknown format %q (want terminal or json)", genFormat)
	}

	if cfg.Bluesky.Identifier == "" || cfg.Bluesky.Password == "" {
		return fmt.Errorf("credentials missing: set %s and %s", cfg.Bluesky.IdentifierEnv, cfg.Bluesky.PasswordEnv)
	}

	client, err := bsky.New(cfg.Bluesky.Service, cfg.Bluesky.Identifier, cfg.Bluesky.Password)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	var gw cache.Gateway
	if genNoCache {
		gw = cache.NewMemory()
	} else {
		db, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer func() { _ = db.Close() }()
		gw = db
	}

	svc, err := recap.NewService(client, gw, cfg.Cache.TTL.Duration)
	if err != nil {
		return err
	}

	year := genYear
	if year == 0 {
		year = time.Now().UTC().Year()
	}
	offset := cfg.Recap.TimezoneOffsetMinutes
	if cmd.Flags().Changed("tz-offset") {
		offset = genTZOffset
	}

	handle := recap.NormalizeHandle(args[0])
	if handle == "" {
		return errors.New("handle is required")
	}

	fmt.Fprintf(os.Stderr, "generating recap for @%s, %d...\n", handle, year)

	var result *recap.Recap
	if genForce {
		result, err = svc.Regenerate(ctx, handle, year, offset)
	} else {
		result, err = svc.GetOrGenerate(ctx, handle, year, offset)
	}
	if err != nil {
		return fmt.Errorf("generate recap: %w", err)
	}

	return formatter.Format(os.Stdout, result)
}
