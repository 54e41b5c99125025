// Package cmd implements the aupdate CLI: check, download, validate,
// update, and history commands layered over the update engine.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/caldera-labs/aupdate/internal/app/update"
	"github.com/caldera-labs/aupdate/internal/constants"
	"github.com/caldera-labs/aupdate/internal/domain/version"
	"github.com/caldera-labs/aupdate/internal/infra/cache"
	"github.com/caldera-labs/aupdate/internal/infra/feedclient"
	"github.com/caldera-labs/aupdate/internal/platform"
)

var (
	// verbose controls the log level.
	verbose bool

	// earlyAccess opts the current invocation into the early-access channel.
	earlyAccess bool

	// feedURI overrides the feed endpoint; set via --feed-url or the
	// AUPDATE_FEED_URL environment variable.
	feedURI string

	// ctx/cancel is the global context, cancelled on interrupt so in-flight
	// downloads and feed fetches unwind cleanly.
	ctx, cancel = context.WithCancel(context.Background())

	// engine is initialized once in InitConfig and used by every subcommand.
	engine *update.Engine

	// Version of aupdate itself, set at build time via -ldflags, not to be
	// confused with the application version aupdate tracks updates for.
	Version = "v0.0.0"

	// currentVersionFlag is the version string the host application reports
	// as currently running. It is required for check/download/update/history
	// to have any meaning.
	currentVersionFlag string
)

// Execute wires the persistent flags, runs InitConfig ahead of every
// subcommand, and executes the root command under the global context.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		BoolVar(&earlyAccess, "early-access", false, "Include early-access releases when checking for updates")
	rootCmd.PersistentFlags().
		StringVar(&feedURI, "feed-url", "", "Override the update feed URL (default: AUPDATE_FEED_URL)")
	rootCmd.PersistentFlags().
		StringVar(&currentVersionFlag, "current-version", "", "Version currently running (required)")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return InitConfig()
	}

	return rootCmd.ExecuteContext(ctx)
}

var signalOnce sync.Once

// InitConfig sets the log level, installs the interrupt handler, and
// constructs the update engine from flags and environment variables.
func InitConfig() error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("Verbose mode enabled")
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	signalOnce.Do(func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)

		go func() {
			<-sigCh

			_, _ = fmt.Fprintln(os.Stdout)
			logrus.Debug("Interrupt received, canceling operations...")
			signal.Stop(sigCh)
			cancel()
		}()
	})

	if currentVersionFlag == "" {
		return fmt.Errorf("%w", ErrCurrentVersionRequired)
	}

	current, err := version.Parse(currentVersionFlag)
	if err != nil {
		return fmt.Errorf("invalid --current-version: %w", err)
	}

	uri := feedURI
	if uri == "" {
		uri = os.Getenv("AUPDATE_FEED_URL")
	}

	if uri == "" {
		return fmt.Errorf("%w", ErrFeedURLRequired)
	}

	cacheDir, err := platform.CacheDir()
	if err != nil {
		return fmt.Errorf("failed to resolve cache directory: %w", err)
	}

	fileCache, err := cache.New(cacheDir)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	fetcher := feedclient.New(feedclient.StaticURI(uri), nil)

	earlyAccessCategory := os.Getenv("AUPDATE_EARLY_ACCESS_CATEGORY")
	if earlyAccessCategory == "" {
		earlyAccessCategory = constants.DefaultEarlyAccessCategoryName
	}

	engine = update.NewEngine(fetcher, fileCache, &update.Config{
		CurrentVersion:          current,
		EarlyAccessCategoryName: earlyAccessCategory,
	})

	logrus.Debugf("engine initialized: feed=%s cache=%s current=%s", uri, cacheDir, current.String())

	return nil
}

// checkTimeout bounds a single Latest/Downloaded/Validated chain so a dead
// feed or stalled download can't hang the CLI forever.
const checkTimeout = 10 * time.Minute

// withTimeout derives a bounded context from the global one.
func withTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, checkTimeout)
}

// rootCmd is the entry point for the "check", "download", "validate",
// "update", and "history" subcommands.
var rootCmd = &cobra.Command{
	Use:     "aupdate",
	Short:   "Desktop auto-update engine",
	Long:    "Checks, downloads, validates, and installs updates from a remote release feed.",
	Version: Version,
}
