package main

import (
	"context"

	"github.com/scott-cotton/cli"

	_ "github.com/defpatch/defpatch/directive"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
