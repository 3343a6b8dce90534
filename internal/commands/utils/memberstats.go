package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createMemberStatsCommand creates the /utils memberstats subcommand
func createMemberStatsCommand() *discord.Command {
	return discord.NewCommand(
		"memberstats",
		"Analiza un miembro del servidor",
		"utils",
		memberStatsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro a analizar (por defecto, tú)",
			Required:    false,
		},
	)
}

// memberStatsHandler handles the /utils memberstats command
func memberStatsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			user = ctx.User()
		}

		guildID := ctx.Interaction.GuildID
		member, err := ctx.Session.GuildMember(guildID, user.ID)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo obtener al miembro: %v", err))
			return
		}

		accountAge := 0
		if created, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
			accountAge = int(time.Since(created).Hours() / 24)
		}
		tenure := int(time.Since(member.JoinedAt).Hours() / 24)

		memberType := "👥 Miembro"
		if user.Bot {
			memberType = "🤖 Bot"
		} else if guild, err := ctx.Session.State.Guild(guildID); err == nil && guild.OwnerID == user.ID {
			memberType = "👑 Dueño del servidor"
		}

		health := "✅ Saludable"
		if accountAge <= 30 || len(member.Roles) == 0 {
			health = "⚠️ Cuenta nueva"
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("📊 Análisis de %s", user.Username),
			Color: 0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: user.AvatarURL("256"),
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "👤 Tipo",
					Value:  memberType,
					Inline: true,
				},
				{
					Name:   "📅 Antigüedad en el servidor",
					Value:  fmt.Sprintf("%d días", tenure),
					Inline: true,
				},
				{
					Name:   "🎂 Edad de la cuenta",
					Value:  fmt.Sprintf("%d días", accountAge),
					Inline: true,
				},
				{
					Name:   "🎭 Roles",
					Value:  fmt.Sprintf("%d", len(member.Roles)),
					Inline: true,
				},
				{
					Name:   "⚠️ Advertencias",
					Value:  fmt.Sprintf("%d", len(mods.Warnings(guildID, user.ID))),
					Inline: true,
				},
				{
					Name:   "💊 Estado",
					Value:  health,
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
