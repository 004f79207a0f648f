package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/datestamp/internal/core/domain"
	"github.com/kamal-hamza/datestamp/internal/core/services"
	"github.com/kamal-hamza/datestamp/pkg/config"
	"github.com/kamal-hamza/datestamp/pkg/ui"
)

// session runs one interactive stamping of a single photo
type session struct {
	out       io.Writer
	prompter  Prompter
	cfg       *config.Config
	metadata  *services.MetadataService
	watermark *services.WatermarkService
	copy      func(string) error
}

func newSession(cmd *cobra.Command) *session {
	return &session{
		out:       cmd.OutOrStdout(),
		prompter:  newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		cfg:       appConfig,
		metadata:  metadataService,
		watermark: watermarkService,
		copy:      copyToClipboard,
	}
}

func runStamp(cmd *cobra.Command, args []string) error {
	return newSession(cmd).run(getContext())
}

// run asks for the image path and then stamps it
func (s *session) run(ctx context.Context) error {
	path, err := s.prompter.Ask("Image file path", "")
	if err != nil {
		return err
	}

	if !isRegularFile(path) {
		fmt.Fprintln(s.out, ui.FormatError("Invalid path, please check the file path."))
		return nil
	}

	return s.stamp(ctx, path)
}

// stamp collects the watermark settings for path and writes the stamped copy
func (s *session) stamp(ctx context.Context, path string) error {
	// 1. Capture date
	date := s.metadata.Extract(ctx, path)
	if !date.Valid {
		fmt.Fprintln(s.out, ui.FormatWarning("No EXIF capture date found, using default text."))
	} else {
		fmt.Fprintln(s.out, ui.FormatCamera("Captured on "+date.Value))
	}
	text := date.Text(domain.DefaultCaptureText)

	// 2. Settings
	sizeInput, err := s.prompter.Ask("Font size", strconv.Itoa(s.cfg.FontSize))
	if err != nil {
		return err
	}
	fontSize, err := parseFontSize(sizeInput)
	if err != nil {
		return err
	}

	color, err := s.prompter.Ask("Font color (e.g. red or #FF0000)", s.cfg.Color)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, ui.FormatInfo("Positions: "+positionChoices()))
	positionInput, err := s.prompter.Ask("Watermark position", s.cfg.Position)
	if err != nil {
		return err
	}
	position := domain.ParsePosition(positionInput)
	if !position.IsNamed() {
		fmt.Fprintln(s.out, ui.FormatMuted(fmt.Sprintf("Unknown position %q, using %s", positionInput, domain.PositionLeftTop)))
	}

	// 3. Compose
	result, err := s.watermark.Compose(ctx, services.ComposeRequest{
		SourcePath: path,
		Placement: domain.PlacementRequest{
			Text:     text,
			FontSize: fontSize,
			Color:    color,
			Position: position,
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, ui.FormatSuccess("Saved watermarked image: "+result.OutputPath))

	if s.cfg.CopyToClipboard && s.copy != nil {
		if err := s.copy(result.OutputPath); err != nil {
			fmt.Fprintln(s.out, ui.FormatMuted("(Clipboard access failed, please copy manually)"))
		}
	}

	return nil
}

func parseFontSize(input string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidFontSize, input)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidFontSize, size)
	}
	return size, nil
}

func positionChoices() string {
	names := make([]string, len(domain.Positions))
	for i, p := range domain.Positions {
		names[i] = p.String()
	}
	return strings.Join(names, " / ")
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
