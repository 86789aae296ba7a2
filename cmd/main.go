package main

import (
	"os"

	"github.com/Kryptamyr/Packer-Tracker/cmd/bootstrap"
)

func main() {
	os.Exit(bootstrap.Execute())
}
