package main

import "github.com/replicatedhq/treesize/pkg/cli"

func main() {
	cli.Execute()
}
