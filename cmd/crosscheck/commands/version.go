/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: version.go
Description: Version command implementation for io-crosscheck.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time in a full release pipeline; fixed here
// since this repository has no such pipeline wired yet.
const Version = "0.1.0"

// PrintVersion prints the engine version.
func PrintVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("io-crosscheck %s\n", Version)
	return nil
}
