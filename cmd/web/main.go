package main

import (
	"internlink_backend/internal/app"
)

func main() {
	app.Run()
}
