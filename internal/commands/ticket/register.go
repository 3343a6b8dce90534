// Package ticket provides the /ticket command group for the support
// ticket system.
package ticket

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
)

var workflow *tickets.Workflow

// RegisterTicketCommands registers all /ticket subcommands
func RegisterTicketCommands(client *discord.ExtendedClient, wf *tickets.Workflow) {
	workflow = wf

	setupCmd := createSetupCommand()
	closeCmd := createCloseCommand()
	listCmd := createListCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"ticket",
		"Sistema de tickets de soporte",
		setupCmd,
		closeCmd,
		listCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}
