// Command skyroute generates flight workloads, answers route queries in
// batch, verifies the planner against exhaustive search, and serves queries
// over HTTP.
//
// Usage:
//
//	skyroute generate -o cases.txt --cases 20 --seed 7
//	skyroute run -i cases.txt -o output.txt
//	skyroute compare output.txt model_output.txt
//	skyroute verify --cases 200
//	skyroute serve --flights cases.txt --addr :8080
//
// All subcommands accept --config <file.yaml>; flags override file values.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
