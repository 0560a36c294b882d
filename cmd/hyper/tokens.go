package main

import (
	"github.com/spf13/cobra"

	"github.com/hyper-lang/hyper/internal/astdump"
	"github.com/hyper-lang/hyper/internal/lexer"
)

func (a *app) tokensCmd() *cobra.Command {
	var eval string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := inputSource(args, eval)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(src)
			if err != nil {
				return a.report(err, src)
			}
			a.log.Debug("lexed", "file", src.Name, "tokens", len(tokens))

			return astdump.Encode(a.stdout, a.cfg.Format(), astdump.Tokens(tokens, a.dumpOptions()))
		},
	}

	cmd.Flags().StringVarP(&eval, "eval", "e", "", "lex this text instead of a file")
	a.outputFlags(cmd)

	return cmd
}
