package main

import "github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/cmd"

func main() {
	cmd.Execute()
}
