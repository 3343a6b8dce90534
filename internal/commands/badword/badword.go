// Package badword - /badword add, remove, list, clear and action commands
package badword

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /badword add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Añade una palabra prohibida",
		"badword",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "palabra",
			Description: "Palabra o fragmento a prohibir",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// addHandler handles the /badword add command
func addHandler(ctx *discord.CommandContext) error {
	word := strings.TrimSpace(ctx.GetStringOption("palabra"))
	if word == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una palabra.")
	}

	if !mods.AddBannedWord(ctx.Interaction.GuildID, word) {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ La palabra `%s` ya estaba prohibida.", strings.ToLower(word)))
	}

	// Ephemeral so the banned word itself isn't broadcast
	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Palabra `%s` añadida al filtro.", strings.ToLower(word)))
}

// createRemoveCommand creates the /badword remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Elimina una palabra prohibida",
		"badword",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "palabra",
			Description: "Palabra a retirar del filtro",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// removeHandler handles the /badword remove command
func removeHandler(ctx *discord.CommandContext) error {
	word := strings.TrimSpace(ctx.GetStringOption("palabra"))
	if word == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una palabra.")
	}

	if !mods.RemoveBannedWord(ctx.Interaction.GuildID, word) {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ La palabra `%s` no estaba en el filtro.", strings.ToLower(word)))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Palabra `%s` eliminada del filtro.", strings.ToLower(word)))
}

// createListCommand creates the /badword list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista las palabras prohibidas",
		"badword",
		listHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// listHandler handles the /badword list command
func listHandler(ctx *discord.CommandContext) error {
	words, action := mods.FilterConfig(ctx.Interaction.GuildID)
	if len(words) == 0 {
		return ctx.ReplyEphemeral("ℹ️ No hay palabras prohibidas configuradas.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🚫 Palabras prohibidas (%d)", len(words)),
		Description: fmt.Sprintf("||%s||", strings.Join(words, ", ")),
		Color:       0xFFA500,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Acción configurada: %s", action),
		},
	}

	return ctx.ReplyEphemeralEmbed(embed)
}

// createClearCommand creates the /badword clear subcommand
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Elimina todas las palabras prohibidas",
		"badword",
		clearHandler,
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// clearHandler handles the /badword clear command
func clearHandler(ctx *discord.CommandContext) error {
	n := mods.ClearBannedWords(ctx.Interaction.GuildID)
	if n == 0 {
		return ctx.ReplyEphemeral("ℹ️ No había palabras prohibidas configuradas.")
	}

	return ctx.Reply(fmt.Sprintf("🧹 Se eliminaron **%d** palabras del filtro.", n))
}

// createActionCommand creates the /badword action subcommand
func createActionCommand() *discord.Command {
	return discord.NewCommand(
		"action",
		"Configura la acción al detectar palabras prohibidas",
		"badword",
		actionHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Acción a aplicar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Eliminar mensaje", Value: string(moderation.ActionDelete)},
				{Name: "Eliminar y advertir", Value: string(moderation.ActionWarn)},
				{Name: "Eliminar y aislar 5 minutos", Value: string(moderation.ActionTimeout)},
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// actionHandler handles the /badword action command
func actionHandler(ctx *discord.CommandContext) error {
	action, ok := moderation.ParseFilterAction(ctx.GetStringOption("accion"))
	if !ok {
		return ctx.ReplyEphemeral("❌ Acción no válida. Usa `delete`, `warn` o `timeout`.")
	}

	mods.SetFilterAction(ctx.Interaction.GuildID, action)

	return ctx.Reply(fmt.Sprintf("✅ Acción del filtro configurada: **%s**.", action))
}
