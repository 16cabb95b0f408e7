package main

import "github.com/TK-A369/tk-lisp-test-1/cmd"

func main() {
	cmd.Execute()
}
