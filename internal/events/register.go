// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, message, interaction, etc.)
package events

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
)

// Dependencies holds the shared state consumed by the event handlers
type Dependencies struct {
	Mods     *moderation.Store
	Filter   *moderation.FilterEngine
	Workflow *tickets.Workflow
}

var deps *Dependencies

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, d *Dependencies) {
	deps = d

	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave, auto-roles)
	RegisterMemberEvents(client)

	// Message events (banned word filter)
	RegisterMessageEvents(client)

	// Interaction events (ticket buttons)
	RegisterInteractionEvents(client)

	// Channel events (ticket cleanup)
	RegisterChannelEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
