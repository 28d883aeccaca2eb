package main

import "github.com/jordan-corbett-digital/gnomemode/cmd/gnome/root"

func main() {
	root.Execute()
}
