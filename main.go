package main

import (
	"github.com/ValentinKolb/redisc/cmd"
)

func main() {
	cmd.Execute()
}
