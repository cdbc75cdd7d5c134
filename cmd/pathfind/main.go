// SPDX-License-Identifier: MIT
// Command pathfind runs A* searches over YAML route graphs, text grids and
// kinematic lattices.
//
//	pathfind route  --graph roads.yaml --from depot --to store
//	pathfind grid   --map level.txt --from 0,1 --to 4,1 --diagonal --render
//	pathfind motion --min 0,0 --max 9,9 --from 0,0 --to 5,3 --max-speed 2
//
// Exit codes: 0 path found, 1 no path, 2 error.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
