// Package autorole - /autorole add, remove, list and clear commands
package autorole

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createAddCommand creates the /autorole add subcommand
func createAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Añade un rol automático",
		"autorole",
		addHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol a asignar automáticamente",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles).
		WithBotPermissions(discordgo.PermissionManageRoles)
}

// addHandler handles the /autorole add command
func addHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("rol")
	if role == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un rol.")
	}

	if !mods.AddAutoRole(ctx.Interaction.GuildID, role.ID) {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El rol **%s** ya está configurado como rol automático.", role.Name))
	}

	return ctx.Reply(fmt.Sprintf("✅ El rol **%s** se asignará a los nuevos miembros.", role.Name))
}

// createRemoveCommand creates the /autorole remove subcommand
func createRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Elimina un rol automático",
		"autorole",
		removeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol a retirar de la lista",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles)
}

// removeHandler handles the /autorole remove command
func removeHandler(ctx *discord.CommandContext) error {
	role := ctx.GetRoleOption("rol")
	if role == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un rol.")
	}

	if !mods.RemoveAutoRole(ctx.Interaction.GuildID, role.ID) {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El rol **%s** no estaba configurado.", role.Name))
	}

	return ctx.Reply(fmt.Sprintf("✅ El rol **%s** ya no se asignará automáticamente.", role.Name))
}

// createListCommand creates the /autorole list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista los roles automáticos configurados",
		"autorole",
		listHandler,
	).WithUserPermissions(discordgo.PermissionManageRoles)
}

// listHandler handles the /autorole list command
func listHandler(ctx *discord.CommandContext) error {
	roles := mods.AutoRoles(ctx.Interaction.GuildID)
	if len(roles) == 0 {
		return ctx.ReplyEphemeral("ℹ️ No hay roles automáticos configurados.")
	}

	mentions := make([]string, 0, len(roles))
	for _, id := range roles {
		mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎭 Roles automáticos",
		Description: strings.Join(mentions, "\n"),
		Color:       0x3498db,
	}

	return ctx.ReplyEmbed(embed)
}

// createClearCommand creates the /autorole clear subcommand
func createClearCommand() *discord.Command {
	return discord.NewCommand(
		"clear",
		"Elimina todos los roles automáticos",
		"autorole",
		clearHandler,
	).WithUserPermissions(discordgo.PermissionManageRoles)
}

// clearHandler handles the /autorole clear command
func clearHandler(ctx *discord.CommandContext) error {
	n := mods.ClearAutoRoles(ctx.Interaction.GuildID)
	if n == 0 {
		return ctx.ReplyEphemeral("ℹ️ No había roles automáticos configurados.")
	}

	return ctx.Reply(fmt.Sprintf("🧹 Se eliminaron **%d** roles automáticos.", n))
}
