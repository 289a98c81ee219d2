package main

import (
	"os"

	"github.com/soundprediction/faqgraph/cmd/faqgraph"
)

func main() {
	if err := faqgraph.Execute(); err != nil {
		os.Exit(1)
	}
}
