//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The eca viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/eca-view` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless output use `eca run --format png`.")
	os.Exit(2)
}
