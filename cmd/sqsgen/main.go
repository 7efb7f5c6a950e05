// SPDX-License-Identifier: MIT
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("sqsgen: %v", err)
	}
}
