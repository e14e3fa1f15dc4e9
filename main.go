package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/peterh/liner"

	"shapegen/internal/config"
	"shapegen/internal/errors"
	"shapegen/internal/infer"
	"shapegen/internal/models"
	"shapegen/internal/parser"
	"shapegen/internal/render"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output   string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config   string `help:"Path to config file. Defaults to the nearest .shapegen.yml." short:"c" type:"path"`
	RootName string `help:"Bind the declaration to this name as a constant." short:"r"`

	StringType  string `help:"Spelling for string types." name:"string-type" placeholder:"NAME"`
	IntegerType string `help:"Spelling for integer types." name:"integer-type" placeholder:"NAME"`
	FloatType   string `help:"Spelling for float types." name:"float-type" placeholder:"NAME"`
	BoolType    string `help:"Spelling for bool types." name:"bool-type" placeholder:"NAME"`
	AnyType     string `help:"Spelling for heterogeneous fields." name:"any-type" placeholder:"NAME"`
	UnknownType string `help:"Spelling for fields with no type information." name:"unknown-type" placeholder:"NAME"`

	PascalCase  bool `help:"Rewrite field names to PascalCase in the output."`
	Interactive bool `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
	Version     bool `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("shapegen"),
		kong.Description("Infer minimal structural types from sample JSON and render them as declarations"),
		kong.UsageOnError(),
	)

	// With no arguments at all, fall back to interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("shapegen version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: shapegen --help\n")
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then the config
// file, then CLI flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()

	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, errors.NewInputError("failed to load config", err)
		}
		cfg = loaded
	}

	if CLI.RootName != "" {
		cfg.RootName = CLI.RootName
	}
	if CLI.StringType != "" {
		cfg.Types.String = CLI.StringType
	}
	if CLI.IntegerType != "" {
		cfg.Types.Integer = CLI.IntegerType
	}
	if CLI.FloatType != "" {
		cfg.Types.Float = CLI.FloatType
	}
	if CLI.BoolType != "" {
		cfg.Types.Bool = CLI.BoolType
	}
	if CLI.AnyType != "" {
		cfg.Types.Any = CLI.AnyType
	}
	if CLI.UnknownType != "" {
		cfg.Types.Unknown = CLI.UnknownType
	}
	if CLI.PascalCase {
		cfg.Naming.PascalCaseFields = true
	}

	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input into the ordered value tree
	root, err := parseInput()
	if err != nil {
		return err
	}

	// 2. Infer the minimal structural type. The Inferrer owns the arena the
	// whole tree lives in; it is released as one unit when run returns.
	inferrer := infer.New()
	typ := inferrer.Infer(root)

	// 3. Render the declaration text
	renderer := render.New(ctx.Config.RenderOptions())
	var sb strings.Builder
	if ctx.Config.RootName != "" {
		err = renderer.RenderDecl(&sb, ctx.Config.RootName, typ)
	} else {
		err = renderer.Render(&sb, typ)
	}
	if err != nil {
		return errors.NewRenderError("failed to render declaration", err)
	}

	text := sb.String()
	if ctx.Config.Output.TrailingNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	// 4. Output the result
	return writeOutput(text)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.Value, error) {
	if CLI.Input != "" {
		return parser.ParseFile(CLI.Input)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return models.Value{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.Value{}, errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return models.Value{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes the rendered declaration to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text), 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Declaration written to %s\n", CLI.Output)
		return nil
	}

	if _, err := io.WriteString(os.Stdout, text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput prompts for JSON line by line until EOF (Ctrl+D)
func readInteractiveInput() (models.Value, error) {
	fmt.Fprintln(os.Stderr, "shapegen interactive mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D when done:")

	rl := liner.NewLiner()
	rl.SetCtrlCAborts(true)
	defer func() { _ = rl.Close() }()

	var jsonBuilder strings.Builder
	for {
		line, err := rl.Prompt("> ")
		if err == io.EOF {
			break
		}
		if err == liner.ErrPromptAborted {
			return models.Value{}, errors.NewInputError("input aborted", nil)
		}
		if err != nil {
			return models.Value{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
		jsonBuilder.WriteByte('\n')
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return models.Value{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
