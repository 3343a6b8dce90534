// Package logchannel - /log set, view and remove commands
package logchannel

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createSetCommand creates the /log set subcommand
func createSetCommand() *discord.Command {
	return discord.NewCommand(
		"set",
		"Establece el canal de registros",
		"log",
		setHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal donde se enviarán los registros",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setHandler handles the /log set command
func setHandler(ctx *discord.CommandContext) error {
	channel := ctx.GetChannelOption("canal")
	if channel == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un canal.")
	}

	// Overwrites any previous binding
	mods.SetLogChannel(ctx.Interaction.GuildID, channel.ID)

	return ctx.Reply(fmt.Sprintf("✅ Los registros se enviarán a <#%s>.", channel.ID))
}

// createViewCommand creates the /log view subcommand
func createViewCommand() *discord.Command {
	return discord.NewCommand(
		"view",
		"Muestra el canal de registros configurado",
		"log",
		viewHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// viewHandler handles the /log view command
func viewHandler(ctx *discord.CommandContext) error {
	channelID, ok := mods.LogChannel(ctx.Interaction.GuildID)
	if !ok {
		return ctx.ReplyEphemeral("ℹ️ No hay canal de registros configurado.")
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("📋 Canal de registros actual: <#%s>", channelID))
}

// createRemoveCommand creates the /log remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Elimina el canal de registros",
		"log",
		removeHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// removeHandler handles the /log remove command
func removeHandler(ctx *discord.CommandContext) error {
	if !mods.ClearLogChannel(ctx.Interaction.GuildID) {
		return ctx.ReplyEphemeral("ℹ️ No había canal de registros configurado.")
	}

	return ctx.Reply("✅ Canal de registros eliminado.")
}
