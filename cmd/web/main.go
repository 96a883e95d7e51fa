package main

import "github.com/ContentMachine/Talent-and-Beauty-Backend/internal/app"

func main() {
	app.Run()
}
