package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fwessels/parser"
	"github.com/fwessels/parser/internal/logutil"
)

type app struct {
	configFile string
	p          *parser.Parser
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tokenize",
		Short:         "Tokenize, strip or search text files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&a.configFile, "config", "", "TOML file with the character classes (default ./"+defaultConfigFile+" if present)")
	fs.String("splitters", "", "characters separating tokens")
	fs.String("quoters", "", "quote characters")
	fs.String("specials", "", "characters that are tokens of their own")
	fs.String("delete", "", "characters to remove")
	fs.String("comment-start", "", "string opening a comment")
	fs.String("comment-end", "", "string closing a comment")
	fs.String("log-level", "", "log level")
	fs.String("log-format", "", "log format, console or json")
	fs.String("log-file", "", "log to this file instead of stderr")

	root.AddCommand(a.tokensCommand(), a.stripCommand(), a.seekCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	cfg.applyFlags(cmd.Flags())

	a.logger = logutil.SetupLogger(&cfg.Log)
	a.p, err = parser.New(append(cfg.options(), parser.WithLogger(a.logger))...)
	return err
}

func (a *app) tokensCommand() *cobra.Command {
	var stripQuotes bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := a.p.TokenizeFile(args[0], stripQuotes)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stripQuotes, "strip-quotes", false, "remove quote marks from quoted tokens")
	return cmd
}

func (a *app) stripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <file>",
		Short: "Print a file with comments and delete characters removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := parser.ReadAndStripFile(args[0],
				a.p.Quoters(), a.p.DeleteSet(), a.p.CommentStart(), a.p.CommentEnd())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (a *app) seekCommand() *cobra.Command {
	var skip bool
	cmd := &cobra.Command{
		Use:   "seek <file> <target>",
		Short: "Print the offset of the first target outside quotes and comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "seek")
			}
			defer f.Close()

			res, err := a.p.SeekTo(f, args[1], skip)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprintln(out, "not found")
				return nil
			}
			fmt.Fprintf(out, "found %d\n", res.Offset)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skip, "skip", false, "report the offset just past the target")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
