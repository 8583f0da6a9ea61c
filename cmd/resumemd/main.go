// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/resumemd

// resumemd renders JSON Resume documents as Markdown.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/woozymasta/resumemd"
)

// defaultPreviewWidth is used when output is not a terminal.
const defaultPreviewWidth = 80

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/resumemd"
	_buildTime string
)

// cliOptions describes resumemd CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Sample  sampleCommand  `command:"sample" description:"Print built-in sample resume"`
	Render  renderCommand  `command:"render" description:"Convert JSON Resume document to markdown"`
	Preview previewCommand `command:"preview" description:"Render resume markdown formatted for terminal"`
}

// renderFlags groups resume rendering flags.
type renderFlags struct {
	Locale          string `short:"L" long:"locale" env:"JSONRESUME_THEME_MARKDOWN_COUNTRY_LANG" description:"Language for present label and country names (en or de)" default:"en"`
	Format          string `short:"F" long:"format" description:"Input document format" choice:"auto" choice:"json" choice:"yaml" default:"auto"`
	RawCountryCodes bool   `long:"raw-country-codes" description:"Keep country codes instead of resolving country names"`
}

// renderCommand converts resume document to markdown.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input resume file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags renderFlags `group:"Resume Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.RenderFlags, command.Args.Input, command.Args.Output)
}

// previewCommand renders resume markdown for terminal output.
type previewCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input resume file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	RenderFlags renderFlags `group:"Resume Render"`
	Style       string      `short:"s" long:"style" description:"Terminal style" choice:"auto" choice:"dark" choice:"light" choice:"dracula" choice:"tokyo-night" choice:"pink" choice:"ascii" choice:"notty" default:"auto"`
	Width       int         `short:"w" long:"width" description:"Word wrap width (0 detects terminal width)" default:"0"`
}

// Execute runs preview subcommand.
func (command *previewCommand) Execute(_ []string) error {
	return command.runner.runPreview(command.RenderFlags, command.Args.Input, command.Style, command.Width)
}

// sampleCommand exports built-in sample resume.
type sampleCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output sample file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Format string `short:"F" long:"format" description:"Sample document format" default:"json"`
}

// Execute runs sample subcommand.
func (command *sampleCommand) Execute(_ []string) error {
	return command.runner.runSample(command.Format, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "resumemd"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runRender renders resume and writes markdown to stdout or file.
func (runner *cliRunner) runRender(renderOptions renderFlags, inputPath, outputPath string) error {
	rendered, err := runner.renderInput(renderOptions, inputPath)
	if err != nil {
		return err
	}

	return runner.writeOutput(outputPath, []byte(rendered), "markdown")
}

// runPreview renders resume markdown and formats it for terminal with glamour.
func (runner *cliRunner) runPreview(renderOptions renderFlags, inputPath, style string, width int) error {
	rendered, err := runner.renderInput(renderOptions, inputPath)
	if err != nil {
		return err
	}

	if width <= 0 {
		width = terminalWidth(runner.stdout)
	}

	termOptions := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		termOptions = append(termOptions, glamour.WithAutoStyle())
	} else {
		termOptions = append(termOptions, glamour.WithStandardStyle(style))
	}

	termRenderer, err := glamour.NewTermRenderer(termOptions...)
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := termRenderer.Render(rendered)
	if err != nil {
		return fmt.Errorf("render terminal preview: %w", err)
	}

	if _, err := io.WriteString(runner.stdout, out); err != nil {
		return fmt.Errorf("write preview to stdout: %w", err)
	}

	return nil
}

// runSample writes built-in sample resume to stdout or file.
func (runner *cliRunner) runSample(format, outputPath string) error {
	data, err := resumemd.SampleResume(resumemd.InputFormat(format))
	if err != nil {
		return fmt.Errorf("load sample resume: %w", err)
	}

	return runner.writeOutput(outputPath, data, "sample")
}

// renderInput renders resume from file path with resumemd.RenderFile, or from stdin.
func (runner *cliRunner) renderInput(renderOptions renderFlags, inputPath string) (string, error) {
	options := runner.buildOptions(renderOptions)

	inputPath = strings.TrimSpace(inputPath)
	if inputPath != "" {
		rendered, err := resumemd.RenderFile(inputPath, options)
		if err != nil {
			return "", fmt.Errorf("render resume file %q: %w", inputPath, err)
		}

		return rendered, nil
	}

	data, err := runner.readStdin()
	if err != nil {
		return "", err
	}

	rendered, err := resumemd.RenderBytes(data, options)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	return rendered, nil
}

// buildOptions maps CLI flags into library options and warns about unknown locale.
func (runner *cliRunner) buildOptions(renderOptions renderFlags) resumemd.Options {
	locale := strings.TrimSpace(renderOptions.Locale)
	if locale != "" && !resumemd.IsKnownLocale(locale) {
		_, _ = fmt.Fprintf(runner.stderr, "warning: unsupported locale %q; using %s\n", locale, resumemd.LocaleEnglish)
	}

	options := resumemd.DefaultOptions()
	options.Locale = resumemd.ParseLocale(locale)
	options.Format = resumemd.InputFormat(renderOptions.Format)
	if options.Format == "" {
		options.Format = resumemd.InputFormatAuto
	}

	if renderOptions.RawCountryCodes {
		options.CountryNames = resumemd.RawCountryCodes{}
	}

	return options
}

// readStdin reads resume document from stdin and rejects empty input.
func (runner *cliRunner) readStdin() ([]byte, error) {
	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read resume from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read resume from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes data to stdout when path is empty, to file otherwise.
func (runner *cliRunner) writeOutput(outputPath string, data []byte, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// terminalWidth returns terminal column count for stdout or default width.
func terminalWidth(output io.Writer) int {
	file, ok := output.(*os.File)
	if !ok {
		return defaultPreviewWidth
	}

	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return defaultPreviewWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultPreviewWidth
	}

	return width
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Sample.runner = runner
	options.Render.runner = runner
	options.Preview.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)
	applySampleFormatChoices(parser)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Convert JSON Resume document (JSON or YAML) to markdown.
Reads resume from file argument or stdin; writes markdown to file argument or stdout.
Locale falls back to the JSONRESUME_THEME_MARKDOWN_COUNTRY_LANG environment variable.

Examples:
> $ %s render resume.json > resume.md
> $ cat resume.yaml | %s render -L de > lebenslauf.md
`, programName, programName)),
		"preview": strings.TrimSpace(fmt.Sprintf(`
Render resume markdown and format it for terminal output.

Examples:
> $ %s preview resume.json
> $ %s preview -s dracula -w 100 resume.yaml
`, programName, programName)),
		"sample": strings.TrimSpace(fmt.Sprintf(`
Print built-in sample resume.
Use it as a starting point for your own resume document.
Formats: %s.

Examples:
> $ %s sample > resume.json
> $ %s sample -F yaml resume.yaml
`, strings.Join(sampleFormatNames(), ", "), programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// applySampleFormatChoices restricts sample --format to formats supported by the library.
func applySampleFormatChoices(parser *flags.Parser) {
	command := parser.Find("sample")
	if command == nil {
		return
	}

	option := command.FindOptionByLongName("format")
	if option == nil {
		return
	}

	option.Choices = sampleFormatNames()
}

// sampleFormatNames lists sample formats as plain strings.
func sampleFormatNames() []string {
	formats := resumemd.SampleFormats()
	names := make([]string, 0, len(formats))
	for _, format := range formats {
		names = append(names, string(format))
	}

	return names
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
