package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createServerInfoCommand creates the /utils serverinfo subcommand
func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"Muestra información del servidor",
		"utils",
		serverInfoHandler,
	)
}

// serverInfoHandler handles the /utils serverinfo command
func serverInfoHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guild := ctx.Guild()
		if guild == nil {
			ctx.ReplyEphemeral("❌ Este comando solo funciona en un servidor.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("🏠 %s", guild.Name),
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🆔 ID",
					Value:  guild.ID,
					Inline: true,
				},
				{
					Name:   "👑 Dueño",
					Value:  fmt.Sprintf("<@%s>", guild.OwnerID),
					Inline: true,
				},
				{
					Name:   "👥 Miembros",
					Value:  fmt.Sprintf("%d", guild.MemberCount),
					Inline: true,
				},
				{
					Name:   "💬 Canales",
					Value:  fmt.Sprintf("%d", len(guild.Channels)),
					Inline: true,
				},
				{
					Name:   "🎭 Roles",
					Value:  fmt.Sprintf("%d", len(guild.Roles)),
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		if guild.Icon != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("256")}
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
