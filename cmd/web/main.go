package main

import "korus_backend/internal/app"

func main() {
	app.Run()
}
