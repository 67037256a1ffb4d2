package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/fountain"
	"github.com/fwojciec/fountain/bubbletea"
	"github.com/fwojciec/fountain/chroma"
	"github.com/fwojciec/fountain/clipboard"
	"github.com/fwojciec/fountain/config"
	"github.com/fwojciec/fountain/fs"
	fountainlg "github.com/fwojciec/fountain/lipgloss"
	fountainlog "github.com/fwojciec/fountain/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNothingToPrint is returned when printing a document with no text.
var ErrNothingToPrint = errors.New("nothing to print: pass a file or pipe a screenplay")

const usage = `usage: fountain [flags] [file]
       fountain classify [-workers N] file...
       fountain stats [file.jsonl]
       fountain config [-init]

Opens file in the editor when stdout is a terminal; otherwise prints it highlighted.`

// App opens a screenplay in the editor or prints it highlighted.
type App struct {
	Loader      fountain.Loader
	Editor      fountain.Editor
	Stdin       io.Reader // Read when printing without a path
	Stdout      io.Writer
	Interactive bool   // Stdout is a terminal
	DefaultName string // Name for documents started without a path

	Tokenizer fountain.Tokenizer
	Detector  fountain.LanguageDetector
	Renderer  *lipgloss.Renderer
	PageWidth int
	Logger    *slog.Logger
}

// Run loads the document at path and edits or prints it.
func (a *App) Run(ctx context.Context, path string) error {
	doc, err := a.load(path)
	if err != nil {
		return err
	}
	if a.Interactive {
		return a.Editor.Edit(ctx, doc)
	}
	return a.Print(doc)
}

func (a *App) load(path string) (*fountain.Document, error) {
	if path == "" && !a.Interactive && a.Stdin != nil {
		data, err := io.ReadAll(a.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return fountain.NewDocument(a.DefaultName, string(data)), nil
	}

	doc, err := a.Loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if path == "" && a.DefaultName != "" {
		doc.Name = fountain.EnsureExtension(a.DefaultName)
	}
	return doc, nil
}

// Print writes the document to Stdout, one highlighted line per line.
func (a *App) Print(doc *fountain.Document) error {
	if doc.Text == "" {
		return ErrNothingToPrint
	}

	logger := a.Logger
	if logger == nil {
		logger = fountainlog.Discard()
	}

	language := a.Detector.DetectFromPath(doc.Name)
	if language != chroma.LanguageName {
		logger.Debug("treating document as Fountain", "name", doc.Name, "detected", language)
		language = chroma.LanguageName
	}

	lines := a.Tokenizer.TokenizeLines(language, doc.Text)
	if lines == nil {
		return fmt.Errorf("no highlighter for %s", language)
	}
	_, err := fmt.Fprintln(a.Stdout, fountainlg.RenderTokenLines(lines, a.Renderer, a.PageWidth))
	return err
}

// ColorRenderer returns a renderer for w with the color profile selected by
// mode: "auto" detects from w, "always" forces true color, "never" disables color.
func ColorRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "", "auto":
	case "always":
		r.SetColorProfile(termenv.TrueColor)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("invalid color mode %q: want auto, always or never", mode)
	}
	return r, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if len(args) > 0 {
		switch args[0] {
		case "classify":
			return runClassify(ctx, args[1:])
		case "stats":
			return runStats(args[1:])
		case "config":
			return runConfig(args[1:])
		}
	}
	return runEdit(ctx, args)
}

func runEdit(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("fountain", flag.ContinueOnError)
	configPath := flags.String("config", config.DefaultPath(), "Path to the config file")
	themeName := flags.String("theme", "", "Color theme: dark or light")
	saveDir := flags.String("save-dir", "", "Directory for saved screenplays")
	colorMode := flags.String("color", "auto", "Color when printing: auto, always or never")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 1 {
		return errors.New(usage)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	if *saveDir != "" {
		cfg.SaveDir = *saveDir
	}

	theme, err := fountainlg.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	logger, closer := fountainlog.New(fountainlog.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Quiet:  interactive,
	}, os.Stderr)
	defer closer.Close()

	renderer, err := ColorRenderer(os.Stdout, *colorMode)
	if err != nil {
		return err
	}
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromStyles(theme.Styles()))
	if err != nil {
		return fmt.Errorf("error setting up syntax highlighting: %w", err)
	}

	dir := cfg.SaveDir
	if dir == "" {
		dir = fs.DefaultSaveDir()
	}

	app := &App{
		Loader: fs.NewLoader(),
		Editor: bubbletea.NewEditor(
			bubbletea.WithTheme(theme),
			bubbletea.WithSaver(fs.NewSaver(dir)),
			bubbletea.WithClipboard(systemClipboard()),
			bubbletea.WithLogger(logger),
			bubbletea.WithInsertEscape(cfg.InsertEscape),
			bubbletea.WithPageWidth(cfg.PageWidth),
		),
		Stdout:      os.Stdout,
		Interactive: interactive,
		DefaultName: cfg.Filename,
		Tokenizer:   tokenizer,
		Detector:    chroma.NewDetector(),
		Renderer:    renderer,
		PageWidth:   cfg.PageWidth,
		Logger:      fountainlog.WithComponent(logger, "print"),
	}

	// Read a piped screenplay when printing without a path.
	if !interactive && flags.NArg() == 0 {
		stat, err := os.Stdin.Stat()
		if err != nil {
			return fmt.Errorf("error checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			app.Stdin = os.Stdin
		}
	}

	logger.Debug("starting", "interactive", interactive, "theme", theme.Name(), "save_dir", dir)
	return app.Run(ctx, flags.Arg(0))
}

// systemClipboard returns the platform clipboard, falling back to pbcopy on macOS.
// It returns nil when no backend is available.
func systemClipboard() fountain.Clipboard {
	sys := clipboard.NewSystem()
	if sys.Available() {
		return sys
	}
	if runtime.GOOS == "darwin" {
		return clipboard.NewPBCopy()
	}
	return nil
}
