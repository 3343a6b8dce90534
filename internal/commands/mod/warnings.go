// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Lista las advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	warns := mods.Warnings(ctx.Interaction.GuildID, user.ID)
	if len(warns) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** no tiene advertencias.", user.Username))
	}

	var sb strings.Builder
	for i, w := range warns {
		sb.WriteString(fmt.Sprintf("**%d.** %s\n> Moderador: <@%s> | <t:%d:R>\n",
			i+1, w.Reason, w.Moderator, w.Timestamp.Unix()))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Advertencias de %s (%d)", user.Username, len(warns)),
		Description: sb.String(),
		Color:       0xFFFF00,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	return ctx.ReplyEmbed(embed)
}
