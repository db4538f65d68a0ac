package main

import (
	"github.com/eastlane-store/go-backend/internal/app"
)

func main() {
	app.Run()
}
