package main

import (
	"github.com/shouni/go-model-refs/cmd"
)

func main() {
	cmd.Execute()
}
