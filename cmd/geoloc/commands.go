package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SergeyF11/espGeoLocation/internal/config"
	"github.com/SergeyF11/espGeoLocation/internal/geoloc"
	"github.com/SergeyF11/espGeoLocation/internal/ui"
)

// Lookup command flags
var (
	language     string
	timeoutFlag  time.Duration
	setTime      bool
	withStatus   bool
	outputFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "Two-letter response language code (e.g. ru, de)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Lookup deadline (default from config, else 10s)")
	rootCmd.PersistentFlags().BoolVar(&setTime, "set-time", false, "Apply the parsed UTC offset to the process time zone")
	rootCmd.PersistentFlags().BoolVar(&withStatus, "status", false, "Request the leading status field from the service")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, plain, json)")

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(watchCmd)
}

// requestOptions merges the config file with flag overrides.
func requestOptions() (geoloc.Options, time.Duration) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file must not block a lookup; defaults apply.
		cfg = config.Default()
	}

	opts := geoloc.Options{
		AutoSetTime: cfg.AutoSetTime || setTime,
		Language:    cfg.Language,
		WithStatus:  cfg.WithStatus || withStatus,
	}
	if language != "" {
		opts.Language = language
	}

	timeout := cfg.Timeout(geoloc.DefaultLocateTimeout)
	if timeoutFlag > 0 {
		timeout = timeoutFlag
	}
	return opts, timeout
}

// locateCmd performs a blocking one-shot lookup
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve location once and print the result",
	Long: `Perform a single blocking geolocation lookup and print the result.

The lookup queries ip-api.com over plain TCP and decodes the line-oriented
response. With --set-time the parsed UTC offset is also applied to the
process time zone.`,
	Example: `  # Plain lookup
  geoloc locate

  # Localized names, longer deadline
  geoloc locate --lang de --timeout 30s

  # JSON output for scripting
  geoloc locate --format json`,
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, args []string) error {
	opts, timeout := requestOptions()

	c := geoloc.NewDefault()
	start := time.Now()
	if !c.Locate(opts, timeout) {
		fmt.Println(ui.RenderFailure(c.Err()))
		return fmt.Errorf("lookup failed: %s", c.Err())
	}

	result := c.Result()
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "plain":
		fmt.Println(result)
	default:
		fmt.Println(ui.RenderResult(result, time.Since(start).Round(time.Millisecond).String()))
	}
	return nil
}

// watchCmd runs the lookup with a live progress view
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Resolve location with a live progress view",
	Long: `Perform a geolocation lookup while showing the request state machine's
progress live. Press q to cancel.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, timeout := requestOptions()

	c := geoloc.NewDefault()
	c.SetTimeout(timeout)

	ok, err := ui.RunWatch(ui.NewWatchModel(c, opts))
	if err != nil {
		return fmt.Errorf("progress view failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("lookup failed: %s", c.Err())
	}
	return nil
}
