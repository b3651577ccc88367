package main

import (
	"github.com/spf13/cobra"

	"saneld/internal/linkargs"
	"saneld/internal/linker"
)

type linkFunc func(args []string) error

func linkWith(l *linker.Linker) linkFunc {
	return func(args []string) error {
		return l.Run(linkargs.Filter(linkargs.DefaultRules(), args))
	}
}

// newRootCmd builds a command that hands every argument to link untouched.
// The shim has no flags of its own, so cobra must not parse or print anything.
func newRootCmd(link linkFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "sane-ld [wasm-ld args...]",
		Short:              "Drop host-only arguments from clang's wasm32 link line and run wasm-ld",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return link(args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}
