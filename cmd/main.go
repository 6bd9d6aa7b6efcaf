package main

import (
	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
