package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/projeto-evento/evento-api/cmd/app"
)

// @title        evento-api
// @version      1.0
// @description  Participants, loyalty points and gift redemption for events.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
