package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/olirtf"
	"pkt.systems/version"
)

const (
	defaultWidth = 80
	stdioPath    = "-"
)

func init() {
	version.SetDefaultModule("pkt.systems/olirtf")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		configPath  string
		printCfg    bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("olirtf", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("format", "f", "rtf", "Output format: rtf|text")
	flags.IntP("width", "w", 0, "Wrap width for text output (0 uses terminal width if available)")
	flags.BoolP("boring", "b", false, "Text output without ANSI underline")
	flags.BoolP("verbose", "v", false, "Print input/output paths and the file header to stderr")
	flags.Bool("dump-tokens", false, "Write the decoded token stream to stderr")
	flags.Bool("force", false, "Write RTF even when the output is a terminal")
	flags.StringVar(&configPath, "config", "", "TOML config file (default $OLIRTF_CONFIG or the user config dir)")
	flags.BoolVar(&printCfg, "print-config", false, "Print the effective configuration as TOML and exit")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: olirtf [flags] <input> <output>\n")
		fmt.Fprintln(stderr, "\nUse - for stdin or stdout. Inputs may also be file:// or http(s):// URLs.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	cfg, err := loadConfig(flags, configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if printCfg {
		if err := printConfig(stdout, cfg); err != nil {
			fmt.Fprintf(stderr, "print config: %v\n", err)
			return 1
		}
		return 0
	}

	positional := flags.Args()
	if len(positional) < 2 {
		flags.Usage()
		return 2
	}
	format, err := olirtf.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --format: %v\n", err)
		return 2
	}
	inPath, outPath := positional[0], positional[1]
	if cfg.Verbose {
		fmt.Fprintf(stderr, "Input file: %s\n", inPath)
		fmt.Fprintf(stderr, "Output file: %s\n", outPath)
	}

	src, err := readInput(inPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input %s: %v\n", inPath, err)
		return 1
	}
	if err := olirtf.Sniff(src); err != nil {
		fmt.Fprintf(stderr, "warning: %s: %v; converting anyway\n", inPath, err)
	}
	if cfg.Verbose {
		if header := olirtf.HeaderText(src); header != "" {
			fmt.Fprintf(stderr, "File header: %s\n", header)
		}
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "create output %s: %v\n", outPath, err)
		return 1
	}
	if format == olirtf.FormatRTF && !cfg.Force && isTerminal(writer) {
		fmt.Fprintln(stderr, "refusing to write RTF to terminal; use --format text or --force")
		return 2
	}

	tokens := olirtf.Tokenize(src)
	if cfg.DumpTokens {
		if err := olirtf.DumpTokens(stderr, tokens); err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
	}

	renderErr := olirtf.Render(olirtf.RenderRequest{
		Tokens: tokens,
		Writer: writer,
		Format: format,
		Options: []olirtf.RenderOption{
			olirtf.WithWidth(resolveWidth(cfg.Width, writer)),
			olirtf.WithANSI(!cfg.Boring && isTerminal(writer)),
		},
	})
	if renderErr != nil {
		fmt.Fprintf(stderr, "write output %s: %v\n", outPath, renderErr)
		if closeOut != nil {
			_ = closeOut.Close()
		}
		return 1
	}
	if closeOut != nil {
		if err := syncAndClose(closeOut); err != nil {
			fmt.Fprintf(stderr, "close output %s: %v\n", outPath, err)
			return 1
		}
	}
	return 0
}

func readInput(raw string, stdin io.Reader) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty input argument")
	}
	if raw == stdioPath {
		return io.ReadAll(stdin)
	}
	reader, closer, err := openInput(raw)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closer.Close() }()
	return io.ReadAll(reader)
}

func openInput(raw string) (io.Reader, io.Closer, error) {
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return openURL(raw)
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return openFile(path)
		}
	}
	return openFile(raw)
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if path == stdioPath {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func syncAndClose(c io.Closer) error {
	if f, ok := c.(*os.File); ok {
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return err
		}
	}
	return c.Close()
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				return tw
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
