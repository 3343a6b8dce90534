// Package mod - ban inspection commands (/mod banned, isbanned, baninfo)
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createBannedCommand creates the /mod banned subcommand
func createBannedCommand() *discord.Command {
	return discord.NewCommand(
		"banned",
		"Lista los usuarios baneados del servidor",
		"mod",
		bannedHandler,
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

// bannedHandler handles the /mod banned command
func bannedHandler(ctx *discord.CommandContext) error {
	entries, err := ctx.Session.GuildBans(ctx.Interaction.GuildID, 0, "", "")
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo obtener la lista de baneos: %v", err))
	}

	if len(entries) == 0 {
		return ctx.ReplyEphemeral("ℹ️ No hay usuarios baneados.")
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🔨 Usuarios baneados (%d)", len(entries)),
		Color: 0xED4245,
	}

	// Discord caps embeds at 25 fields
	shown := entries
	if len(shown) > 25 {
		shown = shown[:25]
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Mostrando 25 de %d baneos", len(entries)),
		}
	}

	for i, entry := range shown {
		reason := entry.Reason
		if reason == "" {
			reason = "Sin razón especificada"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", i+1, entry.User.Username),
			Value: fmt.Sprintf("ID: %s\nRazón: %s", entry.User.ID, reason),
		})
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

// createIsBannedCommand creates the /mod isbanned subcommand
func createIsBannedCommand() *discord.Command {
	return discord.NewCommand(
		"isbanned",
		"Comprueba si un ID de usuario está baneado",
		"mod",
		isBannedHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del usuario a comprobar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

// isBannedHandler handles the /mod isbanned command
func isBannedHandler(ctx *discord.CommandContext) error {
	userID := ctx.GetStringOption("id")
	if userID == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar el ID del usuario.")
	}

	entry, err := ctx.Session.GuildBan(ctx.Interaction.GuildID, userID)
	if err != nil {
		// Discord reports unknown bans as an error
		return ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ El usuario con ID %s no está baneado.", userID))
	}

	reason := entry.Reason
	if reason == "" {
		reason = "Sin razón especificada"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🔨 Usuario baneado",
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usuario", Value: entry.User.Username, Inline: true},
			{Name: "ID", Value: entry.User.ID, Inline: true},
			{Name: "Razón", Value: reason},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: entry.User.AvatarURL("128"),
		},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

// createBanInfoCommand creates the /mod baninfo subcommand
func createBanInfoCommand() *discord.Command {
	return discord.NewCommand(
		"baninfo",
		"Muestra los detalles del baneo de un usuario",
		"mod",
		banInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

// banInfoHandler handles the /mod baninfo command
func banInfoHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	entry, err := ctx.Session.GuildBan(ctx.Interaction.GuildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ **%s** no está baneado en este servidor.", user.Username))
	}

	reason := entry.Reason
	if reason == "" {
		reason = "Sin razón especificada"
	}

	embed := &discordgo.MessageEmbed{
		Title: "🔨 Información del baneo",
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usuario", Value: entry.User.Username, Inline: true},
			{Name: "ID", Value: entry.User.ID, Inline: true},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: entry.User.AvatarURL("128"),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Solicitado por %s", ctx.User().Username),
		},
	}

	if created, err := discordgo.SnowflakeTimestamp(entry.User.ID); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Cuenta creada",
			Value:  fmt.Sprintf("<t:%d:D>", created.Unix()),
			Inline: true,
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Razón", Value: reason,
	})

	return ctx.ReplyEphemeralEmbed(embed)
}
