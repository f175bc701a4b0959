package main

import "github.com/marcjwo/cymbal-pets-dataset/cmd"

func main() {
	cmd.Execute()
}
