// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
)

// Shared state injected at registration time
var (
	mods *moderation.Store
	bans *moderation.BanScheduler
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, store *moderation.Store, scheduler *moderation.BanScheduler) {
	mods = store
	bans = scheduler

	// Create individual subcommands (each can be in its own file)
	banCmd := createBanCommand()
	unbanCmd := createUnbanCommand()
	tempbanCmd := createTempbanCommand()
	kickCmd := createKickCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	clearwarnsCmd := createClearWarnsCommand()
	purgeCmd := createPurgeCommand()
	slowmodeCmd := createSlowmodeCommand()
	lockCmd := createLockCommand()
	unlockCmd := createUnlockCommand()
	nicknameCmd := createNicknameCommand()
	roleCmd := createRoleCommand()
	muteallCmd := createMuteAllCommand()
	unmuteallCmd := createUnmuteAllCommand()
	bannedCmd := createBannedCommand()
	isbannedCmd := createIsBannedCommand()
	baninfoCmd := createBanInfoCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		unbanCmd,
		tempbanCmd,
		kickCmd,
		muteCmd,
		unmuteCmd,
		warnCmd,
		warningsCmd,
		clearwarnsCmd,
		purgeCmd,
		slowmodeCmd,
		lockCmd,
		unlockCmd,
		nicknameCmd,
		roleCmd,
		muteallCmd,
		unmuteallCmd,
		bannedCmd,
		isbannedCmd,
		baninfoCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
