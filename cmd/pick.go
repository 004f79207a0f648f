package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/datestamp/internal/adapters/exifmeta"
	"github.com/kamal-hamza/datestamp/internal/core/services"
	"github.com/kamal-hamza/datestamp/pkg/logging"
	"github.com/kamal-hamza/datestamp/pkg/ui"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick [dir]",
	Short: "Choose a photo with a fuzzy finder, then stamp it",
	Long: `Lists the images in a directory (default: current directory, not recursive)
in a fuzzy finder. The chosen photo continues through the usual prompts.

Examples:
  datestamp pick
  datestamp pick ~/Pictures/2023`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	images, err := listImages(dir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatWarning("No images found in "+dir))
		return nil
	}

	preview := newPreviewMetadataService()

	idx, err := fuzzyfinder.Find(
		images,
		func(i int) string {
			return filepath.Base(images[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return imagePreview(ctx, preview, images[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatRocket("Stamping "+filepath.Base(images[idx])))
	return newSession(cmd).stamp(ctx, images[idx])
}

// newPreviewMetadataService reads dates for the finder's preview pane.
// It never logs, since the finder owns the terminal while it runs.
func newPreviewMetadataService() *services.MetadataService {
	return services.NewMetadataService(exifmeta.NewDecoder(), logging.Nop())
}
