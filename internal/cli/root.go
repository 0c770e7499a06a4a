package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wxsend/internal/buildinfo"
	"github.com/aalvaropc/wxsend/internal/domain"
	"github.com/aalvaropc/wxsend/internal/infra/webex"
)

// rootOptions holds what differs between a real invocation and a test one.
type rootOptions struct {
	progName string
	baseURL  string
	// environ overrides the process environment when non-nil.
	environ map[string]string
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, defaultOptions(os.Args), os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	if code != 0 {
		os.Exit(code)
	}
}

func defaultOptions(argv []string) rootOptions {
	prog := "wxsend"
	if len(argv) > 0 && argv[0] != "" {
		prog = argv[0]
	}
	return rootOptions{
		progName: prog,
		baseURL:  webex.DefaultBaseURL,
	}
}

// run executes the command and maps the outcome to an exit code.
func run(ctx context.Context, opts rootOptions, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(opts rootOptions) *cobra.Command {
	var debug bool
	var envFile string

	cmd := &cobra.Command{
		Use:           filepath.Base(opts.progName) + " [flags] <recipient_email> <file_path> <message_text>",
		Short:         "Send a file with a message to a Webex user by email",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Positionals are taken verbatim, so an address or message starting
		// with "-" is never mistaken for a flag.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rest, err := parseLeadingFlags(cmd, args)
			if err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
				return nil
			}
			if len(rest) != 3 {
				return usageError(opts.progName)
			}
			return sendFile(cmd, opts, sendArgs{
				delivery: domain.Delivery{
					RecipientEmail: rest[0],
					FilePath:       rest[1],
					Text:           rest[2],
				},
				debug:   debug,
				envFile: envFile,
			})
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file providing WEBEX_* variables")
	return cmd
}

// parseLeadingFlags applies registered flags that precede the positionals and
// returns the rest. The first token that is not a registered flag starts the
// positionals; "--" ends flag parsing explicitly.
func parseLeadingFlags(cmd *cobra.Command, args []string) ([]string, error) {
	fs := cmd.Flags()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[i+1:], nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			return args[i:], nil
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		f := fs.Lookup(name)
		if f == nil && !strings.HasPrefix(arg, "--") && len(name) == 1 {
			f = fs.ShorthandLookup(name)
		}
		if f == nil {
			return args[i:], nil
		}

		if !hasValue {
			switch {
			case f.NoOptDefVal != "":
				value = f.NoOptDefVal
			case i+1 < len(args):
				i++
				value = args[i]
			default:
				return nil, &domain.OpError{
					Op:   "cli.flags",
					Kind: domain.KindInput,
					Err:  fmt.Errorf("flag needs an argument: --%s", f.Name),
				}
			}
		}
		if err := fs.Set(f.Name, value); err != nil {
			return nil, &domain.OpError{
				Op:   "cli.flags",
				Kind: domain.KindInput,
				Err:  fmt.Errorf("invalid value %q for --%s: %v", value, f.Name, err),
			}
		}
	}
	return nil, nil
}

func usageError(prog string) error {
	return &domain.OpError{
		Op:   "cli.args",
		Kind: domain.KindUsage,
		Err:  fmt.Errorf("%s <recipient_email> <file_path> <message_text>", prog),
	}
}

func printError(w io.Writer, err error) {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Kind == domain.KindUsage {
		fmt.Fprintf(w, "Usage: %v\n", oe.Err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
