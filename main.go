package main

import "github.com/kuzzh/obsidian-startpage/pkg/cmd/root"

func main() {
	root.Execute()
}
