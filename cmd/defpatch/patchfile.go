package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/defpatch/defpatch"
	"github.com/defpatch/defpatch/parse"
)

// getPatchFile reads every (patch ...) form in one file, "-" for stdin.
func getPatchFile(cc *cli.Context, path string) ([]*defpatch.Definition, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	forms, err := parse.ParseAll(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	defs := make([]*defpatch.Definition, 0, len(forms))
	for _, form := range forms {
		def, err := defpatch.ParseDefinition(form)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func getPatchFiles(cc *cli.Context, args []string) ([]*defpatch.Definition, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var defs []*defpatch.Definition
	for _, arg := range args {
		fileDefs, err := getPatchFile(cc, arg)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no patch definitions given", cli.ErrUsage)
	}
	return defs, nil
}
