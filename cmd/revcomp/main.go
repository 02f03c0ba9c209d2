// cmd/revcomp/main.go
package main

import (
	"revcomp/internal/app"
	"revcomp/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
