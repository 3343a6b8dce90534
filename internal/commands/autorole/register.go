// Package autorole provides the /autorole command group for managing
// roles assigned automatically to new members.
package autorole

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
)

var mods *moderation.Store

// RegisterAutoRoleCommands registers all /autorole subcommands
func RegisterAutoRoleCommands(client *discord.ExtendedClient, store *moderation.Store) {
	mods = store

	addCmd := createAddCommand()
	removeCmd := createRemoveCommand()
	listCmd := createListCommand()
	clearCmd := createClearCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"autorole",
		"Configura los roles automáticos para nuevos miembros",
		addCmd,
		removeCmd,
		listCmd,
		clearCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}
