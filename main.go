package main

import "github.com/capyflow/iniq/cmd"

func main() {
	cmd.Execute()
}
