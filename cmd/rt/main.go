package main

import "ritualist/cmd/rt/root"

func main() {
	root.Execute()
}
