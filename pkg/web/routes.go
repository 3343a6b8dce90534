// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
	"github.com/gin-gonic/gin"
)

// Stores consumed by the stats endpoint, injected at startup
var (
	modStore       *moderation.Store
	ticketRegistry *tickets.Registry
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, mods *moderation.Store, reg *tickets.Registry) {
	modStore = mods
	ticketRegistry = reg

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/stats", statsHandler)
	}
}

// statusHandler returns the bot status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	uptime := ""
	if client != nil {
		botOnline = client.IsReady()
		uptime = time.Since(client.StartTime).Round(time.Second).String()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"bot": gin.H{
			"isOnline": botOnline,
			"uptime":   uptime,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyGuard Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// statsHandler returns moderation and ticket counters
func statsHandler(c *gin.Context) {
	if modStore == nil || ticketRegistry == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Stats Unavailable",
			"message": "Las estadísticas no están disponibles en este momento.",
		})
		return
	}

	guilds, warnings, bannedWords := modStore.Stats()
	openTickets, closedTickets := ticketRegistry.Stats()

	botGuilds := 0
	if client := discord.Get(); client != nil {
		botGuilds = client.GuildCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"guilds": botGuilds,
		"moderation": gin.H{
			"configuredGuilds": guilds,
			"warnings":         warnings,
			"bannedWords":      bannedWords,
		},
		"tickets": gin.H{
			"open":   openTickets,
			"closed": closedTickets,
		},
	})
}
