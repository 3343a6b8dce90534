package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createUserInfoCommand creates the /utils userinfo subcommand
func createUserInfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Muestra información de un usuario",
		"utils",
		userInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto, tú)",
			Required:    false,
		},
	)
}

// userInfoHandler handles the /utils userinfo command
func userInfoHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			user = ctx.User()
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("👤 %s", user.Username),
			Color: 0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL("256"),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🆔 ID",
					Value:  user.ID,
					Inline: true,
				},
				{
					Name:   "🤖 Bot",
					Value:  fmt.Sprintf("%t", user.Bot),
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		// Warning count if we can see the guild
		if ctx.Interaction.GuildID != "" {
			warnings := mods.Warnings(ctx.Interaction.GuildID, user.ID)
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "⚠️ Advertencias",
				Value:  fmt.Sprintf("%d", len(warnings)),
				Inline: true,
			})
		}

		if member, err := ctx.Session.GuildMember(ctx.Interaction.GuildID, user.ID); err == nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "📅 Se unió",
				Value:  fmt.Sprintf("<t:%d:R>", member.JoinedAt.Unix()),
				Inline: true,
			})
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
