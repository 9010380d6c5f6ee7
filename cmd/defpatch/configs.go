package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/defpatch/defpatch/dirstore"
	"github.com/defpatch/defpatch/encode"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='colorize output'"`
	Store string `cli:"name=store desc='definition store directory'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(2),
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorize honors an explicit -color flag; without one, color follows
// whether the output is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return cfg.Color
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) openStore() (*dirstore.Dir, error) {
	if cfg.Store == "" {
		return nil, fmt.Errorf("%w: -store is required", cli.ErrUsage)
	}
	return dirstore.Open(cfg.Store)
}

type ResolveConfig struct {
	*MainConfig

	Original bool `cli:"name=original aliases=o desc='print the original view instead of the patched one'"`
	Resolve  *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	ShowDiff bool `cli:"name=d desc='show diffs for mismatches'"`
	Validate *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type UnpatchConfig struct {
	*MainConfig

	Unpatch *cli.Command
}

type ListConfig struct {
	*MainConfig

	Filter string `cli:"name=filter desc='expr predicate over {Name, Kind}'"`
	List   *cli.Command
}
