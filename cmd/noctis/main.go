// Command noctis is the operator tool for the vault's cryptographic
// primitives: it derives commitments, nullifiers and empty-subtree digests,
// and builds withdrawal traces offline for inspection.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
