package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/datestamp/internal/adapters/imagefile"
	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/internal/core/services"
	"github.com/kamal-hamza/datestamp/pkg/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show the capture date and EXIF tags of a photo",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	out := cmd.OutOrStdout()
	path := args[0]

	if !isRegularFile(path) {
		return fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
	}

	fmt.Fprintln(out, ui.FormatTitle("Photo Info"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, imagePreview(ctx, metadataService, path))

	target, err := domain.NewOutputTarget(path)
	if err == nil {
		fmt.Fprintln(out, ui.RenderKeyValue("Output", target.Path))
	}
	fmt.Fprintln(out)

	meta, err := metadataService.Inspect(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrNoMetadata) {
			fmt.Fprintln(out, ui.FormatMuted("No EXIF metadata"))
			return nil
		}
		fmt.Fprintln(out, ui.FormatWarning("Could not read EXIF: "+err.Error()))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID", Width: 6},
		{Header: "Tag", Width: 18},
		{Header: "Value", Width: 20, MaxWidth: 60},
	})
	for _, id := range meta.IDs() {
		value, _ := meta.Get(id)
		table.AddRow([]string{fmt.Sprintf("0x%04X", uint16(id)), id.Name(), value})
	}
	fmt.Fprint(out, table.Render())

	return nil
}

// imagePreview renders a short key/value summary of an image file
func imagePreview(ctx context.Context, metadata *services.MetadataService, path string) string {
	var lines []string
	lines = append(lines, ui.RenderKeyValue("File", path))

	info, err := imagefile.Stat(path)
	if err != nil {
		lines = append(lines, ui.RenderKeyValue("Format", "unreadable ("+err.Error()+")"))
	} else {
		lines = append(lines,
			ui.RenderKeyValue("Format", info.Format),
			ui.RenderKeyValue("Dimensions", fmt.Sprintf("%dx%d", info.Width, info.Height)),
			ui.RenderKeyValue("Size", humanize.Bytes(uint64(info.Bytes))),
		)
	}

	date := metadata.Extract(ctx, path)
	lines = append(lines, ui.RenderKeyValue("Capture date", date.Text("none")))

	return strings.Join(lines, "\n")
}
