// Package logchannel provides the /log command group for binding the
// guild's moderation log channel.
package logchannel

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
)

var mods *moderation.Store

// RegisterLogCommands registers all /log subcommands
func RegisterLogCommands(client *discord.ExtendedClient, store *moderation.Store) {
	mods = store

	setCmd := createSetCommand()
	viewCmd := createViewCommand()
	removeCmd := createRemoveCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"log",
		"Configura el canal de registros de moderación",
		setCmd,
		viewCmd,
		removeCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}
