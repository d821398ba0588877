// SPDX-License-Identifier: MIT

// Command epinet analyses epidemiological contact networks and sampled
// epidemic curves from delimited text files.
//
//	epinet summary contacts.csv
//	epinet degrees contacts.csv --kmin 2 --kmax 5
//	epinet ci --confidence 0.99 final_sizes.csv
//	epinet interpolate run1.csv run2.csv run3.csv
//
// Configuration is layered: flags override EPINET_* environment variables,
// which override the YAML file given by --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
