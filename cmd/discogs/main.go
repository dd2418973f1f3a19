// Command discogs reads Discogs XML data dumps.
//
// Usage:
//
//	discogs count discogs_20240101_artists.xml.gz ...
//	discogs json --limit 10 discogs_20240101_releases.xml.gz
//	discogs detect *.xml.gz
//
// Flags may also be set in the environment, e.g. DISCOGS_MAX_DEPTH=128.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
