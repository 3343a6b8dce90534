// Package mod - /mod role command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createRoleCommand creates the /mod role subcommand
func createRoleCommand() *discord.Command {
	return discord.NewCommand(
		"role",
		"Añade o quita un rol a un usuario",
		"mod",
		roleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario objetivo",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol a alternar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageRoles)
}

// roleHandler toggles a role on the target member
func roleHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	role := ctx.GetRoleOption("rol")
	if user == nil || role == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario y un rol.")
	}

	guildID := ctx.Interaction.GuildID
	member, err := ctx.Session.GuildMember(guildID, user.ID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo obtener al usuario: %v", err))
	}

	hasRole := false
	for _, id := range member.Roles {
		if id == role.ID {
			hasRole = true
			break
		}
	}

	if hasRole {
		if err := ctx.Session.GuildMemberRoleRemove(guildID, user.ID, role.ID); err != nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo quitar el rol: %v", err))
		}
		return ctx.Reply(fmt.Sprintf("✅ Rol **%s** quitado a **%s**.", role.Name, user.Username))
	}

	if err := ctx.Session.GuildMemberRoleAdd(guildID, user.ID, role.ID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo añadir el rol: %v", err))
	}
	return ctx.Reply(fmt.Sprintf("✅ Rol **%s** añadido a **%s**.", role.Name, user.Username))
}
