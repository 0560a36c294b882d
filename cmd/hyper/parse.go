package main

import (
	"github.com/spf13/cobra"

	"github.com/hyper-lang/hyper/internal/astdump"
	"github.com/hyper-lang/hyper/internal/parser"
)

func (a *app) parseCmd() *cobra.Command {
	var eval string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of a script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := inputSource(args, eval)
			if err != nil {
				return err
			}

			prog, err := parser.Parse(src)
			if err != nil {
				return a.report(err, src)
			}
			a.log.Debug("parsed", "file", src.Name, "statements", prog.Len())

			return astdump.Encode(a.stdout, a.cfg.Format(), astdump.Program(prog, a.dumpOptions()))
		},
	}

	cmd.Flags().StringVarP(&eval, "eval", "e", "", "parse this text instead of a file")
	a.outputFlags(cmd)

	return cmd
}
