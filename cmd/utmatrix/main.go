// Command utmatrix exercises the vector and utmatrix packages from the shell.
package main

import "github.com/katalvlaran/utmatrix/internal/cli"

func main() {
	cli.Execute()
}
