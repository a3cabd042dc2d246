//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifebox requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifebox` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Saved boards can be inspected headless with `go run ./cmd/slots list`.")
	os.Exit(2)
}
