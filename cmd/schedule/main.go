package main

import (
	"fmt"
	"os"
)

func main() {
	c := &cli{out: os.Stdout}
	c.connect = c.connectServices
	defer c.close()

	if err := newRootCmd(c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		c.close()
		os.Exit(1)
	}
}
