package main

import (
	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
	"github.com/defpatch/defpatch/encode"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	defs, err := getPatchFiles(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, def := range defs {
		res, err := defpatch.ResolveDef(def, !cfg.Original)
		if err != nil {
			return err
		}
		if err := encode.Encode(res.Body, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
