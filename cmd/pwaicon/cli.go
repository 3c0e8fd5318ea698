package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/pwaicon"
	"github.com/esimov/pwaicon/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┬ ┬┌─┐┬┌─┐┌─┐┌┐┌
├─┘│││├─┤││  │ ││││
┴  └┴┘┴ ┴┴└─┘└─┘┘└┘

PWA placeholder icon generator.`

type options struct {
	root    string
	out     string
	label   string
	bg      string
	fg      string
	font    string
	config  string
	sizes   []int
	verbose bool
}

// newRootCmd builds the pwaicon command. Logs and progress go to stderr.
func newRootCmd(stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pwaicon",
		Short:         "Generate the placeholder icon set of a PWA",
		Long:          helpBanner,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return run(cmd.Context(), stderr, cfg, opts.verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.root, "root", ".", "project root, icons are written into <root>/public/icons")
	flags.StringVarP(&opts.out, "out", "o", "", "output directory (overrides --root)")
	flags.StringVar(&opts.label, "label", pwaicon.DefaultLabel, "text drawn on the icons")
	flags.StringVar(&opts.bg, "bg", utils.RGBAToHex(pwaicon.DefaultTheme().Background), "background color")
	flags.StringVar(&opts.fg, "fg", utils.RGBAToHex(pwaicon.DefaultTheme().Foreground), "text color")
	flags.StringVar(&opts.font, "font", "", "font file tried before the system fonts")
	flags.StringVarP(&opts.config, "config", "c", "", "TOML file with the icon settings")
	flags.IntSliceVar(&opts.sizes, "sizes", append([]int(nil), pwaicon.DefaultSizes...), "icon sizes in pixels")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// buildConfig merges the defaults, the optional TOML file and the flags
// explicitly set on the command line, in this order.
func buildConfig(opts options, changed func(string) bool) (pwaicon.Config, error) {
	cfg := pwaicon.DefaultConfig(opts.root)

	if opts.config != "" {
		var err error
		if cfg, err = pwaicon.LoadConfig(opts.config, cfg); err != nil {
			return cfg, err
		}
	}
	if opts.out != "" {
		cfg.OutputDir = opts.out
	}
	if changed("label") {
		cfg.Theme.Label = opts.label
	}
	if changed("bg") {
		c, err := utils.HexToRGBA(opts.bg)
		if err != nil {
			return cfg, fmt.Errorf("--bg: %w", err)
		}
		cfg.Theme.Background = c
	}
	if changed("fg") {
		c, err := utils.HexToRGBA(opts.fg)
		if err != nil {
			return cfg, fmt.Errorf("--fg: %w", err)
		}
		cfg.Theme.Foreground = c
	}
	if changed("sizes") {
		cfg.Sizes = append([]int(nil), opts.sizes...)
	}
	if opts.font != "" {
		cfg.Fonts = append([]pwaicon.FontSource{&pwaicon.FileFont{Path: opts.font}}, cfg.Fonts...)
	}
	return cfg, nil
}

func run(ctx context.Context, stderr io.Writer, cfg pwaicon.Config, verbose bool) error {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	var (
		out     = stderr
		spinner *utils.Spinner
	)
	if f, ok := stderr.(*os.File); ok && !verbose && term.IsTerminal(int(f.Fd())) {
		spinner = utils.NewSpinner(stderr, fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ PWAICON", utils.StatusMessage),
			utils.DecorateText("⇢ rendering icons...", utils.DefaultMessage),
		), 80*time.Millisecond)
		out = spinner
	}
	logger := newLogger(out, level)

	gen, err := pwaicon.NewGenerator(cfg, logger)
	if err != nil {
		return err
	}

	if spinner != nil {
		spinner.Start()
	}
	res, err := gen.Generate(ctx)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	dir, _ := filepath.Abs(res.Dir)
	fmt.Fprintf(stderr, "\n%d icons have been saved in: %s\n",
		len(res.Files), utils.DecorateText(dir, utils.SuccessMessage),
	)
	fmt.Fprintf(stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(res.Elapsed), utils.SuccessMessage),
	)
	return nil
}

// newLogger creates a logger writing to w with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
