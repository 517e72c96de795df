package main

import (
	"github.com/orbis-network/orbis-go/cmd/votergroup/cmd"
)

func main() {
	cmd.Execute()
}
