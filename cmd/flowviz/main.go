// flowviz renders declarative workflow graphs as Mermaid or GraphViz DOT
// text diagrams.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
