package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
)

func unpatch(cfg *UnpatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpatch.Parse(cc, args)
	if err != nil {
		cfg.Unpatch.Usage(cc, err)
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
	ctl := defpatch.NewController(defpatch.NewRegistry(), store)
	if err := loadAppliedState(cfg.Store, ctl); err != nil {
		return err
	}
	// Save state even when a later definition fails: the entries already
	// unpatched must leave applied.yaml, or rerunning would compare their
	// restored live values against stale snapshots and refuse as drift.
	refused, unpatchErr := unpatchDefs(ctl, defs, cc.Out)
	if err := saveAppliedState(cfg.Store, ctl); err != nil {
		if unpatchErr != nil {
			return fmt.Errorf("%v; could not save applied state: %w", unpatchErr, err)
		}
		return err
	}
	if unpatchErr != nil {
		return unpatchErr
	}
	if refused {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func unpatchDefs(ctl *defpatch.Controller, defs []*defpatch.Definition, out io.Writer) (refused bool, err error) {
	for _, def := range defs {
		err := ctl.Unpatch(def.Name, def.Kind)
		switch {
		case err == nil:
			fmt.Fprintf(out, "unpatched %s %s\n", def.Kind, def.Name)
		case errors.Is(err, defpatch.ErrDrift):
			// leave the live value alone; rerun after inspecting
			refused = true
			fmt.Fprintf(out, "refused %s %s: %v\n", def.Kind, def.Name, err)
		default:
			return refused, err
		}
	}
	return refused, nil
}
