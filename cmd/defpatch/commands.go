package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "defpatch").
		WithSynopsis("defpatch [opts] command [opts]").
		WithDescription("defpatch resolves annotated definition patches and manages their lifecycle.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return defpatchMain(cfg, cc, args)
		}).
		WithSubs(
			ResolveCommand(cfg),
			DiffCommand(cfg),
			ValidateCommand(cfg),
			ApplyCommand(cfg),
			UnpatchCommand(cfg),
			ListCommand(cfg))
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r").
		WithSynopsis("resolve [-original] [files]").
		WithDescription("print a resolved view of patch files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolve(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [files]").
		WithDescription("show original vs patched views of patch files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v").
		WithSynopsis("validate -store dir [files]").
		WithDescription("check resolved original views against the live store").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithSynopsis("apply -store dir [files]").
		WithDescription("declare patches and install their patched views").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func UnpatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnpatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Unpatch, "unpatch").
		WithSynopsis("unpatch -store dir [files]").
		WithDescription("restore definitions to their pre-apply state").
		WithRun(func(cc *cli.Context, args []string) error {
			return unpatch(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list [-filter expr] [files]").
		WithDescription("list the (name, kind) pairs declared in patch files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}
