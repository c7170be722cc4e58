package main

import (
	"fmt"
	"os"

	log "github.com/golang/glog"
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	log.Flush()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
