package main

import "github.com/varkel/sudoku/cmd"

func main() {
	cmd.Execute()
}
