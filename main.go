package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pmhours/pmhours-go/config"
	"github.com/pmhours/pmhours-go/cron"
	"github.com/pmhours/pmhours-go/db"
	"github.com/pmhours/pmhours-go/middleware"
	"github.com/pmhours/pmhours-go/repositories"
	"github.com/pmhours/pmhours-go/routes"
	"github.com/pmhours/pmhours-go/services"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	repos := repositories.New()
	svcs := services.New(repos)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r, repos, svcs)

	cron.StartReminderJob(svcs.Compliance, repos.Reminder, &cron.ConsoleNotifier{})

	r.Run(":" + config.ServerPort)
}
