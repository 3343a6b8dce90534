// Package mod - /mod nickname command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createNicknameCommand creates the /mod nickname subcommand
func createNicknameCommand() *discord.Command {
	return discord.NewCommand(
		"nickname",
		"Cambia el apodo de un usuario",
		"mod",
		nicknameHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a renombrar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "apodo",
			Description: "Nuevo apodo (vacío para quitar)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageNicknames).
		WithBotPermissions(discordgo.PermissionManageNicknames)
}

// nicknameHandler handles the /mod nickname command
func nicknameHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	nickname := ctx.GetStringOption("apodo")

	err := ctx.Session.GuildMemberNickname(ctx.Interaction.GuildID, user.ID, nickname)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error cambiando el apodo: %v", err))
	}

	if nickname == "" {
		return ctx.Reply(fmt.Sprintf("✏️ El apodo de **%s** ha sido eliminado.", user.Username))
	}
	return ctx.Reply(fmt.Sprintf("✏️ **%s** ahora se llama **%s**.", user.Username, nickname))
}
