package main

import "github.com/notargets/goharmonics/cmd"

func main() {
	cmd.Execute()
}
