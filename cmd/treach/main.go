// SPDX-License-Identifier: MIT

// Command treach builds a temporal graph, indexes it with one of the
// reachability engines and answers batches of (source, target, window)
// queries.
//
//	treach run   --graph edges.txt --queries q.txt --mode optimized --update 0.2
//	treach stats --graph edges.txt
//	treach gen   --vertices 1000 --edges 20000 --tmax 500 --seed 7 > edges.txt
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
