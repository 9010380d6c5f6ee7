package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
)

type listEnv struct {
	Name string
	Kind string
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	defs, err := getPatchFiles(cc, args)
	if err != nil {
		return err
	}
	var program *vm.Program
	if cfg.Filter != "" {
		program, err = expr.Compile(cfg.Filter, expr.Env(listEnv{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -filter: %v", cli.ErrUsage, err)
		}
	}
	reg := defpatch.NewRegistry()
	for _, def := range defs {
		reg.Declare(def)
	}
	for _, key := range reg.List() {
		if program != nil {
			out, err := expr.Run(program, listEnv{Name: key.Name, Kind: key.Kind.String()})
			if err != nil {
				return fmt.Errorf("error evaluating -filter on %s: %w", key, err)
			}
			if !out.(bool) {
				continue
			}
		}
		fmt.Fprintf(cc.Out, "%s %s\n", key.Kind, key.Name)
	}
	return nil
}
