package utils

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
)

var (
	mods      *moderation.Store
	ticketReg *tickets.Registry
)

// RegisterUtilsCommands registers all utility commands as /utils subcommands
func RegisterUtilsCommands(client *discord.ExtendedClient, store *moderation.Store, reg *tickets.Registry) {
	mods = store
	ticketReg = reg

	// Create individual subcommands (each can be in its own file)
	pingCmd := createPingCommand()
	statusCmd := createStatusCommand()
	helpCmd := createHelpCommand()
	statsCmd := createStatsCommand()
	serverInfoCmd := createServerInfoCommand()
	userInfoCmd := createUserInfoCommand()
	serverStatsCmd := createServerStatsCommand()
	pollCmd := createPollCommand()
	memberStatsCmd := createMemberStatsCommand()
	channelStatsCmd := createChannelStatsCommand()

	// Build the /utils command group with all subcommands
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Comandos de utilidad",
		pingCmd,
		statusCmd,
		helpCmd,
		statsCmd,
		serverInfoCmd,
		userInfoCmd,
		serverStatsCmd,
		pollCmd,
		memberStatsCmd,
		channelStatsCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
