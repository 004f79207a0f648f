package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/datestamp/pkg/config"
	"github.com/kamal-hamza/datestamp/pkg/ui"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or manage the datestamp configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	source := configPath
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		source = configPath + " (not created, using defaults)"
	}

	fmt.Fprintln(out, ui.FormatTitle("Configuration"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderKeyValue("File", source))
	fmt.Fprintln(out, ui.RenderKeyValue("font_family", appConfig.FontFamily))
	fmt.Fprintln(out, ui.RenderKeyValue("font_size", strconv.Itoa(appConfig.FontSize)))
	fmt.Fprintln(out, ui.RenderKeyValue("color", appConfig.Color))
	fmt.Fprintln(out, ui.RenderKeyValue("position", appConfig.Position))
	fmt.Fprintln(out, ui.RenderKeyValue("jpeg_quality", strconv.Itoa(appConfig.JPEGQuality)))
	fmt.Fprintln(out, ui.RenderKeyValue("copy_to_clipboard", strconv.FormatBool(appConfig.CopyToClipboard)))
	fmt.Fprintln(out, ui.RenderKeyValue("color_theme", appConfig.ColorTheme))
	fmt.Fprintln(out, ui.RenderKeyValue("log_level", appConfig.LogLevel))

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Wrote default config: "+configPath))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	// Ensure it exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.FormatInfo("Opening config: "+configPath))

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, configPath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
