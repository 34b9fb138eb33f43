// Command funcdemo prints the first-class function lessons.
package main

import "github.com/Pure-Company/funcdemo/internal/cli"

func main() {
	cli.Execute()
}
