// Package commands implements the jsonflat command tree.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/jsonflat"
	"github.com/reoring/jsonflat/config"
	"github.com/reoring/jsonflat/i18n"
	"github.com/reoring/jsonflat/internal/version"
)

// ConfigEnv names the environment variable holding a default config path.
const ConfigEnv = "JSONFLAT_CONFIG"

// Streams carries the process I/O handed to the commands.
type Streams struct {
	In io.Reader
	// InPiped reports whether In carries data (a pipe or file rather than
	// a terminal). Stdin is only read when it does.
	InPiped bool
	Out     io.Writer
	Err     io.Writer
}

type rootFlags struct {
	configPath     string
	indent         string
	compact        bool
	output         string
	driver         string
	maxDepth       int
	maxBytes       int64
	onDuplicateKey string
	onCollision    string
	lang           string
	verbose        bool
	failFast       bool
}

// NewRootCmd builds the root command. getenv supplies environment lookups.
func NewRootCmd(streams Streams, getenv func(string) string) *cobra.Command {
	var fl rootFlags
	cmd := &cobra.Command{
		Use:   "jsonflat [json ...]",
		Short: "Flatten nested JSON objects into dotted keys",
		Long: "jsonflat reads JSON objects from stdin (when piped) and from each argument,\n" +
			"and prints each one flattened so that nested keys are joined with \".\".",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &fl, getenv)
			if err != nil {
				return err
			}
			log := newLogger(streams.Err, fl.verbose)
			return run(cfg, fl.failFast, log, streams, args)
		},
	}
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	f := cmd.Flags()
	f.StringVarP(&fl.configPath, "config", "c", "", "path to a jsonflat.yaml config file (default $"+ConfigEnv+")")
	f.StringVar(&fl.indent, "indent", jsonflat.DefaultIndent, "indentation for JSON output")
	f.BoolVar(&fl.compact, "compact", false, "print JSON output on a single line")
	f.StringVarP(&fl.output, "output", "o", config.OutputJSON, "output format: json or yaml")
	f.StringVar(&fl.driver, "driver", jsonflat.DefaultDriverName, "JSON parser: encoding/json or go-json")
	f.IntVar(&fl.maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	f.Int64Var(&fl.maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	f.StringVar(&fl.onDuplicateKey, "on-duplicate-key", "ignore", "duplicate input keys: ignore, warn or error")
	f.StringVar(&fl.onCollision, "on-collision", "ignore", "colliding flattened keys: ignore, warn or error")
	f.StringVar(&fl.lang, "lang", "en", "language for error messages: en or ja")
	f.BoolVarP(&fl.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&fl.failFast, "fail-fast", false, "stop at the first input that fails")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		},
	}
}

// loadConfig reads the config file, if any, and applies explicitly set
// flags on top of it.
func loadConfig(cmd *cobra.Command, fl *rootFlags, getenv func(string) string) (*config.Config, error) {
	path := fl.configPath
	if path == "" && getenv != nil {
		path = getenv(ConfigEnv)
	}
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("indent") {
		cfg.Indent = fl.indent
	}
	if changed("compact") {
		cfg.Compact = fl.compact
	}
	if changed("output") {
		cfg.Output = fl.output
	}
	if changed("driver") {
		cfg.Driver = fl.driver
	}
	if changed("max-depth") {
		cfg.MaxDepth = fl.maxDepth
	}
	if changed("max-bytes") {
		cfg.MaxBytes = fl.maxBytes
	}
	if changed("on-duplicate-key") {
		cfg.OnDuplicateKey = fl.onDuplicateKey
	}
	if changed("on-collision") {
		cfg.OnCollision = fl.onCollision
	}
	if changed("lang") {
		cfg.Lang = fl.lang
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// ErrNoInput is returned when neither stdin nor arguments supply a document.
var ErrNoInput = errors.New("no input: pipe JSON on stdin or pass documents as arguments")

type input struct {
	name string
	text string
}

func run(cfg *config.Config, failFast bool, log *logrus.Logger, streams Streams, args []string) error {
	tr := cfg.Translator()
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	var current string
	opts.IssueSink = func(it jsonflat.Issue) {
		log.WithFields(logrus.Fields{
			"input": current,
			"code":  it.Code,
			"path":  it.Path,
		}).Warn(jsonflat.Issues{it}.Localized(tr))
	}
	f := jsonflat.New(opts)

	var inputs []input
	piped := streams.InPiped && streams.In != nil
	if piped {
		data, err := readStdin(streams.In, opts.MaxBytes)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if len(data) > 0 {
			inputs = append(inputs, input{name: "stdin", text: string(data)})
		}
	}
	for i, a := range args {
		inputs = append(inputs, input{name: fmt.Sprintf("arg[%d]", i), text: a})
	}
	if len(inputs) == 0 {
		if piped {
			log.Debug("stdin is empty and no arguments were given")
			return nil
		}
		return ErrNoInput
	}

	log.WithFields(logrus.Fields{
		"inputs": len(inputs),
		"driver": f.Options().Driver.Name(),
		"output": cfg.Output,
	}).Debug("flattening")

	failed := 0
	for _, in := range inputs {
		current = in.name
		out, err := render(f, cfg.Output, in.text)
		if err != nil {
			failed++
			log.WithFields(errorFields(in.name, err)).Error(describe(err, tr))
			if failFast {
				return fmt.Errorf("%s: %w", in.name, err)
			}
			continue
		}
		fmt.Fprintln(streams.Out, out)
		log.WithField("input", in.name).Debug("flattened")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// readStdin reads at most limit+1 bytes, enough for the parser to report
// an oversized input without buffering all of it.
func readStdin(r io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	return io.ReadAll(r)
}

func render(f *jsonflat.Flattener, output, text string) (string, error) {
	if output != config.OutputYAML {
		return f.FlattenToText(text)
	}
	obj, err := f.FlattenToObject(text)
	if err != nil {
		return "", err
	}
	return jsonflat.FormatYAML(jsonflat.ObjectValue(obj))
}

func errorFields(name string, err error) logrus.Fields {
	fields := logrus.Fields{"input": name}
	if iss, ok := jsonflat.AsIssues(err); ok {
		fields["code"] = iss[0].Code
		fields["path"] = iss[0].Path
	}
	return fields
}

func describe(err error, tr i18n.Translator) string {
	if iss, ok := jsonflat.AsIssues(err); ok {
		return iss.Localized(tr)
	}
	return err.Error()
}
