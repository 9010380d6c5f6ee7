package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	store, err := cfg.openStore()
	if err != nil {
		return err
	}
	defs, err := getPatchFiles(cc, args)
	if err != nil {
		return err
	}
	reg := defpatch.NewRegistry()
	for _, def := range defs {
		reg.Declare(def)
	}
	ctl := defpatch.NewController(reg, store)
	vs, err := ctl.ValidateAll()
	if err != nil {
		return err
	}
	colorize := cfg.colorize(cc.Out)
	failed := false
	for _, v := range vs {
		fmt.Fprintf(cc.Out, "%s: %s\n", v.Status, v.Key)
		if v.Status == defpatch.Valid {
			continue
		}
		failed = true
		if cfg.ShowDiff && v.Status == defpatch.Mismatch {
			if err := defpatch.WriteDiff(cc.Out, v.Want, v.Got, colorize); err != nil {
				return err
			}
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
