package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/datestamp/internal/adapters/exifmeta"
	"github.com/kamal-hamza/datestamp/internal/adapters/fonts"
	"github.com/kamal-hamza/datestamp/internal/adapters/imagefile"
	"github.com/kamal-hamza/datestamp/internal/adapters/textdraw"
	"github.com/kamal-hamza/datestamp/internal/core/services"
	"github.com/kamal-hamza/datestamp/pkg/config"
	"github.com/kamal-hamza/datestamp/pkg/logging"
	"github.com/kamal-hamza/datestamp/pkg/ui"
)

var (
	// Global configuration
	appConfig  *config.Config
	configPath string
	verbose    bool
	logger     zerolog.Logger

	// Services
	metadataService  *services.MetadataService
	watermarkService *services.WatermarkService

	// Adapters
	fontResolver *fonts.Resolver
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "datestamp",
	Short: "Stamp a photo with its capture date",
	Long: ui.StyleTitle.Render("datestamp") + " - Photo Date Watermarker\n\n" +
		"Reads the EXIF capture date of a photo and draws it onto the image.\n" +
		"Run without arguments for an interactive session. The stamped copy is\n" +
		"written to a '<folder>_watermark' folder next to the photo's folder.",
	PersistentPreRunE: initializeApp,
	RunE:              runStamp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/datestamp/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug diagnostics")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	level := cfg.LogLevel
	if verbose {
		level = logging.LevelDebug
	}
	logger = logging.New(level, cmd.ErrOrStderr())

	// Initialize adapters
	fontResolver = fonts.NewResolver(logger, fonts.DefaultStrategies(cfg.FontFamily)...)

	// Initialize services
	metadataService = services.NewMetadataService(exifmeta.NewDecoder(), logger)
	watermarkService = services.NewWatermarkService(
		imagefile.NewCodec(cfg.JPEGQuality),
		fontResolver,
		textdraw.NewRenderer(),
		logger,
	)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
