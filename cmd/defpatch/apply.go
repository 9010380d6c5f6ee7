package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
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
	// A failure partway through a batch must not lose the snapshots of the
	// definitions already applied; a later run would re-snapshot their
	// patched values as pristine.
	applyErr := applyDefs(ctl, defs, cc.Out)
	if err := saveAppliedState(cfg.Store, ctl); err != nil {
		if applyErr != nil {
			return fmt.Errorf("%v; could not save applied state: %w", applyErr, err)
		}
		return err
	}
	return applyErr
}

func applyDefs(ctl *defpatch.Controller, defs []*defpatch.Definition, out io.Writer) error {
	for _, def := range defs {
		if err := ctl.Declare(def); err != nil {
			return fmt.Errorf("error applying %s %s: %w", def.Kind, def.Name, err)
		}
		fmt.Fprintf(out, "applied %s %s\n", def.Kind, def.Name)
	}
	return nil
}
