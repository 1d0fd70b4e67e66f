package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/export"
	"github.com/vaultpass/passgen/internal/notify"
	"github.com/vaultpass/passgen/internal/session"
	"golang.org/x/term"
)

var (
	errGenerationFailed = errors.New("generation failed")
	errSaveFailed       = errors.New("export failed")
)

type cliOptions struct {
	verbose bool
	dataDir string
	gen     crypto.Options
}

// newRootCmd builds the command tree. Tests pass their own copier.
func newRootCmd(copier clipboard.Copier) *cobra.Command {
	opts := &cliOptions{gen: crypto.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate strong random passwords",
		Long: `passgen draws passwords from a configurable character pool using a
cryptographically secure random source, scores their strength and exports
batches as numbered text or xlsx files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if !cmd.Flags().Changed("data-dir") {
				opts.dataDir = config.DataDir()
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", config.DefaultDataDir, "directory for saved exports (env DATA_DIR)")

	cmd.AddCommand(newGenerateCmd(opts, copier))
	cmd.AddCommand(newBatchCmd(opts, copier))
	cmd.AddCommand(newStrengthCmd())
	cmd.AddCommand(newHashPasswordCmd())

	return cmd
}

func addGeneratorFlags(cmd *cobra.Command, o *crypto.Options) {
	f := cmd.Flags()
	f.IntVarP(&o.Length, "length", "l", o.Length, "password length")
	f.BoolVar(&o.Lowercase, "lower", o.Lowercase, "include lowercase letters")
	f.BoolVar(&o.Uppercase, "upper", o.Uppercase, "include uppercase letters")
	f.BoolVar(&o.Digits, "digits", o.Digits, "include digits")
	f.BoolVar(&o.Symbols, "symbols", o.Symbols, "include symbols (!@#$%^&*)")
	f.BoolVar(&o.ExcludeSimilar, "exclude-similar", o.ExcludeSimilar, "exclude look-alike characters ("+crypto.SimilarChars+")")
	f.StringVar(&o.Custom, "custom", o.Custom, "extra characters to add to the pool")
}

func newSession(cmd *cobra.Command, opts *cliOptions, copier clipboard.Copier) *session.Session {
	s := session.New(notify.Writer(cmd.ErrOrStderr()), copier, opts.dataDir)
	s.Options = opts.gen
	return s
}

func newGenerateCmd(opts *cliOptions, copier clipboard.Copier) *cobra.Command {
	var copyResult bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single password and show its strength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, opts, copier)
			s.GenerateSingle()
			if s.Password() == "" {
				return errGenerationFailed
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.Password())
			fmt.Fprintf(out, "strength: %d (%s)\n", s.Score(), s.Band())

			if copyResult {
				s.CopySingle()
			}
			return nil
		},
	}

	addGeneratorFlags(cmd, &opts.gen)
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "copy the password to the clipboard")
	return cmd
}

func newBatchCmd(opts *cliOptions, copier clipboard.Copier) *cobra.Command {
	var (
		copyResult bool
		saveAs     []string
	)

	cmd := &cobra.Command{
		Use:   "batch COUNT",
		Short: "Generate 1-100 passwords at once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := make([]export.Format, 0, len(saveAs))
			for _, s := range saveAs {
				f, err := export.ParseFormat(s)
				if err != nil {
					return err
				}
				formats = append(formats, f)
			}

			s := newSession(cmd, opts, copier)
			s.GenerateBatch(args[0])
			if len(s.Batch()) == 0 {
				return errGenerationFailed
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.BatchText())

			if copyResult {
				s.CopyBatch()
			}
			for _, f := range formats {
				var path string
				if f == export.FormatSpreadsheet {
					path = s.SaveSpreadsheet()
				} else {
					path = s.SaveText()
				}
				if path == "" {
					return errSaveFailed
				}
			}
			return nil
		},
	}

	addGeneratorFlags(cmd, &opts.gen)
	cmd.Flags().BoolVarP(&copyResult, "copy", "c", false, "copy the numbered batch to the clipboard")
	cmd.Flags().StringSliceVarP(&saveAs, "save", "s", nil, "save the batch as txt and/or xlsx in the data directory")
	return cmd
}

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength PASSWORD",
		Short: "Score a password from 0 to 100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score := crypto.Score(args[0])
			band := crypto.BandFor(score)
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", score, band, band.Color())
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash an admin password for ADMIN_PASSWORD_HASH",
		Long: `Reads a password (hidden when stdin is a terminal) and prints its
argon2id hash. Put the hash in ADMIN_PASSWORD_HASH to enable
POST /api/v1/auth/token on the API server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if secret == "" {
				return errors.New("password must not be empty")
			}

			hash, err := crypto.HashSecret(secret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

// readSecret reads one line, without echo when in is a terminal.
func readSecret(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
