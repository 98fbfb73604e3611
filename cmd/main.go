package main

import (
	"log"

	"github.com/cbaldofetal-collab/nutrigest/config"
	"github.com/cbaldofetal-collab/nutrigest/routes"
	"github.com/cbaldofetal-collab/nutrigest/services"
	"github.com/cbaldofetal-collab/nutrigest/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	if err := services.SeedCatalog(config.DB); err != nil {
		log.Fatalf("seed food catalog: %v", err)
	}

	pdf := services.NewRodConverter()
	defer pdf.Close()

	r := routes.SetupRouter(config.DB, pdf)
	r.Run(":8080")
}
