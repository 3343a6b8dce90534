// Package mod - channel management commands (/mod purge, slowmode, lock, unlock)
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createPurgeCommand creates the /mod purge subcommand
func createPurgeCommand() *discord.Command {
	return discord.NewCommand(
		"purge",
		"Elimina mensajes recientes del canal",
		"mod",
		purgeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de mensajes a eliminar (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages)
}

// purgeHandler handles the /mod purge command
func purgeHandler(ctx *discord.CommandContext) error {
	amount := int(ctx.GetIntOption("cantidad"))
	if amount < 1 {
		return ctx.ReplyEphemeral("❌ Debes indicar una cantidad válida.")
	}

	messages, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, amount, "", "", "")
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error obteniendo mensajes: %v", err))
	}

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error eliminando mensajes: %v", err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🧹 Se eliminaron **%d** mensajes.", len(ids)))
}

// createSlowmodeCommand creates the /mod slowmode subcommand
func createSlowmodeCommand() *discord.Command {
	return discord.NewCommand(
		"slowmode",
		"Configura el modo lento del canal",
		"mod",
		slowmodeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "segundos",
			Description: "Segundos entre mensajes (0 para desactivar)",
			Required:    true,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    21600, // Discord limit: 6 hours
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// slowmodeHandler handles the /mod slowmode command
func slowmodeHandler(ctx *discord.CommandContext) error {
	seconds := int(ctx.GetIntOption("segundos"))

	_, err := ctx.Session.ChannelEdit(ctx.Interaction.ChannelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error configurando el modo lento: %v", err))
	}

	if seconds == 0 {
		return ctx.Reply("🐇 Modo lento desactivado.")
	}
	return ctx.Reply(fmt.Sprintf("🐢 Modo lento configurado: **%d** segundos entre mensajes.", seconds))
}

// createLockCommand creates the /mod lock subcommand
func createLockCommand() *discord.Command {
	return discord.NewCommand(
		"lock",
		"Bloquea el canal para @everyone",
		"mod",
		lockHandler,
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// lockHandler handles the /mod lock command
func lockHandler(ctx *discord.CommandContext) error {
	// @everyone shares the guild id
	err := ctx.Session.ChannelPermissionSet(
		ctx.Interaction.ChannelID,
		ctx.Interaction.GuildID,
		discordgo.PermissionOverwriteTypeRole,
		0,
		discordgo.PermissionSendMessages,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error bloqueando el canal: %v", err))
	}

	return ctx.Reply("🔒 Canal bloqueado. Solo el staff puede escribir.")
}

// createUnlockCommand creates the /mod unlock subcommand
func createUnlockCommand() *discord.Command {
	return discord.NewCommand(
		"unlock",
		"Desbloquea el canal para @everyone",
		"mod",
		unlockHandler,
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// unlockHandler handles the /mod unlock command
func unlockHandler(ctx *discord.CommandContext) error {
	err := ctx.Session.ChannelPermissionSet(
		ctx.Interaction.ChannelID,
		ctx.Interaction.GuildID,
		discordgo.PermissionOverwriteTypeRole,
		discordgo.PermissionSendMessages,
		0,
	)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error desbloqueando el canal: %v", err))
	}

	return ctx.Reply("🔓 Canal desbloqueado. Todos pueden escribir de nuevo.")
}
