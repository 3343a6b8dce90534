// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (mod, tickets, utils, etc.)
package commands

import (
	"github.com/PancyStudios/PancyGuardGo/internal/commands/autorole"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/badword"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/dev"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/logchannel"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/mod"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/ticket"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/utils"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
)

// RegisterAll registers all commands with the Discord client
// Add your command registration calls here
func RegisterAll(
	client *discord.ExtendedClient,
	mods *moderation.Store,
	bans *moderation.BanScheduler,
	registry *tickets.Registry,
	workflow *tickets.Workflow,
) {
	// Utility commands
	utils.RegisterUtilsCommands(client, mods, registry)

	// Moderation commands (/mod ban, /mod kick, /mod warn, /mod mute, ...)
	mod.RegisterModCommands(client, mods, bans)

	// Auto-role configuration (/autorole add, remove, list, clear)
	autorole.RegisterAutoRoleCommands(client, mods)

	// Content filter configuration (/badword add, remove, list, clear, action)
	badword.RegisterBadWordCommands(client, mods)

	// Moderation log channel (/log set, view, remove)
	logchannel.RegisterLogCommands(client, mods)

	// Support tickets (/ticket setup, close, list)
	ticket.RegisterTicketCommands(client, workflow)

	// Developer commands (/dev eval) — only registered in the dev guild
	dev.Register(client)
}
