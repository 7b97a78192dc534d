package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/strkit/pkg/config"
	"github.com/dmitrymomot/strkit/pkg/i18n"
	"github.com/dmitrymomot/strkit/pkg/logger"
	"github.com/dmitrymomot/strkit/pkg/sanitizer"
	"github.com/dmitrymomot/strkit/pkg/validator"
)

const serviceName = "strkit"

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var (
	errCheckFailed = errors.New("check failed")
	errUsage       = errors.New("usage")
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	Env      string `env:"STRKIT_ENV" envDefault:"development"`
	LogLevel string `env:"STRKIT_LOG_LEVEL" envDefault:"warn"`
	Lang     string `env:"STRKIT_LANG" envDefault:"en"`
}

type runIDKey struct{}

// command is either a transform (prints its output) or a check (prints
// true/false and fails with errCheckFailed on false).
type command struct {
	summary   string
	normalize func(string) string
	transform func(string) string
	rule      func(field, value string) validator.Rule
	field     string
}

var commands = map[string]command{
	"mask": {
		summary:   "Hide the middle four digits of an 11-digit mobile number",
		normalize: sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWidth),
		transform: sanitizer.HideMobile,
	},
	"money": {
		summary:   "Group digits in threes with commas (non-digits are dropped)",
		normalize: sanitizer.NormalizeWidth,
		transform: sanitizer.FormatMoney[string],
	},
	"phone": {
		summary:   "Check a mainland mobile number",
		normalize: sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWidth),
		rule:      validator.ValidPhone,
		field:     "phone",
	},
	"idcard": {
		summary:   "Check the format of an 18-character resident ID number",
		normalize: sanitizer.Compose(sanitizer.Trim, sanitizer.NormalizeWidth),
		rule:      validator.ValidIDCard,
		field:     "id_card",
	},
	"plate": {
		summary:   "Check a vehicle plate number",
		normalize: sanitizer.NormalizePlate,
		rule:      validator.ValidVehicleNumber,
		field:     "plate",
	},
	"required": {
		summary: "Check that a value is not blank",
		rule:    validator.NotEmptyString,
		field:   "value",
	},
}

// app holds the persistent flags and what setup builds from them.
type app struct {
	normalize bool
	envFile   string
	lang      string

	cfg Config
	log *slog.Logger
}

// run executes the CLI and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errCheckFailed):
		return exitInvalid
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               serviceName,
		Short:             "Mask, format and check mainland-China input strings",
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errUsage
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&a.normalize, "normalize", false, "clean up input (trim, full-width folding, plate separators) before processing")
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file first")
	flags.StringVar(&a.lang, "lang", "", "message language, overrides STRKIT_LANG (e.g. zh, en-US)")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		root.AddCommand(a.newCommand(name, commands[name]))
	}

	return root
}

// setup loads configuration, builds the logger and tags the context with a
// run id. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(optional(a.envFile)...); err != nil {
		return err
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, serviceName),
		logger.WithLevelName(a.cfg.LogLevel),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	cmd.SetContext(context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString()))
	return nil
}

func (a *app) newCommand(name string, c command) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <value>",
		Short: c.summary,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, name, c, args[0])
		},
	}
}

func (a *app) execute(cmd *cobra.Command, name string, c command, value string) error {
	ctx := cmd.Context()
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if a.normalize && c.normalize != nil {
		value = c.normalize(value)
	}

	if c.transform != nil {
		out := c.transform(value)
		a.log.DebugContext(ctx, "transformed", logger.Operation(name))
		fmt.Fprintln(stdout, out)
		return nil
	}

	err := validator.Apply(c.rule(c.field, value))
	a.log.DebugContext(ctx, "checked", logger.Operation(name), logger.Result(err == nil))
	if err == nil {
		fmt.Fprintln(stdout, "true")
		return nil
	}

	fmt.Fprintln(stdout, "false")

	tr, trErr := i18n.NewBuiltinTranslator(ctx, i18n.WithLogger(a.log))
	if trErr != nil {
		a.log.ErrorContext(ctx, "load translations", logger.Error(trErr))
		fmt.Fprintln(stderr, err)
		return errCheckFailed
	}

	lang := i18n.MatchLanguage(firstNonEmpty(a.lang, a.cfg.Lang), tr.SupportedLanguages(), tr.DefaultLanguage())
	for _, verr := range validator.ExtractValidationErrors(err) {
		fmt.Fprintln(stderr, translateError(tr, lang, verr))
	}
	return errCheckFailed
}

// translateError renders verr in lang, translating the field name too when
// a "fields.<name>" entry exists.
func translateError(tr *i18n.Translator, lang string, verr validator.ValidationError) string {
	values := make(map[string]any, len(verr.TranslationValues))
	for k, v := range verr.TranslationValues {
		values[k] = v
	}
	if fieldKey := "fields." + verr.Field; tr.HasTranslation(lang, fieldKey) {
		values["field"] = tr.T(lang, fieldKey)
	}

	if !tr.HasTranslation(lang, verr.TranslationKey) && !tr.HasTranslation(tr.DefaultLanguage(), verr.TranslationKey) {
		return verr.Field + ": " + verr.Message
	}
	return tr.TMap(lang, verr.TranslationKey, values)
}

func optional(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
