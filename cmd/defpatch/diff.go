package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	defs, err := getPatchFiles(cc, args)
	if err != nil {
		return err
	}
	colorize := cfg.colorize(cc.Out)
	for i, def := range defs {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		fmt.Fprintf(cc.Out, "patch %s %s\n", def.Kind, def.Name)
		orig, err := defpatch.ResolveDef(def, false)
		if err != nil {
			return err
		}
		patched, err := defpatch.ResolveDef(def, true)
		if err != nil {
			return err
		}
		if err := defpatch.WriteDiff(cc.Out, orig.Body, patched.Body, colorize); err != nil {
			return err
		}
	}
	return nil
}
