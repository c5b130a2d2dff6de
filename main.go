package main

import "github.com/edarioq/prop-ordering/internal/app"

func main() {
	app.Run()
}
