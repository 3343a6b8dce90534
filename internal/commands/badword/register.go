// Package badword provides the /badword command group for configuring
// the banned word filter per guild.
package badword

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
)

var mods *moderation.Store

// RegisterBadWordCommands registers all /badword subcommands
func RegisterBadWordCommands(client *discord.ExtendedClient, store *moderation.Store) {
	mods = store

	addCmd := createAddCommand()
	removeCmd := createRemoveCommand()
	listCmd := createListCommand()
	clearCmd := createClearCommand()
	actionCmd := createActionCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"badword",
		"Configura el filtro de palabras prohibidas",
		addCmd,
		removeCmd,
		listCmd,
		clearCmd,
		actionCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}
