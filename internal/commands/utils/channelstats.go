package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createChannelStatsCommand creates the /utils channelstats subcommand
func createChannelStatsCommand() *discord.Command {
	return discord.NewCommand(
		"channelstats",
		"Analiza un canal del servidor",
		"utils",
		channelStatsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal a analizar (por defecto, el actual)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	)
}

// channelStatsHandler handles the /utils channelstats command
func channelStatsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		channel := ctx.GetChannelOption("canal")
		if channel == nil {
			var err error
			channel, err = ctx.Session.Channel(ctx.Interaction.ChannelID)
			if err != nil {
				ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo obtener el canal: %v", err))
				return
			}
		}

		age := 0
		if created, err := discordgo.SnowflakeTimestamp(channel.ID); err == nil {
			age = int(time.Since(created).Hours() / 24)
		}

		// Hidden for @everyone means a view deny on the guild-wide overwrite
		channelType := "🌐 Público"
		for _, ow := range channel.PermissionOverwrites {
			if ow.ID == ctx.Interaction.GuildID && ow.Deny&discordgo.PermissionViewChannel != 0 {
				channelType = "🔒 Privado"
				break
			}
		}

		category := "Ninguna"
		if channel.ParentID != "" {
			if parent, err := ctx.Session.Channel(channel.ParentID); err == nil {
				category = parent.Name
			}
		}

		embed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("📊 Análisis de #%s", channel.Name),
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🆔 ID",
					Value:  channel.ID,
					Inline: true,
				},
				{
					Name:   "📂 Categoría",
					Value:  category,
					Inline: true,
				},
				{
					Name:   "🔑 Tipo",
					Value:  channelType,
					Inline: true,
				},
				{
					Name:   "📅 Edad",
					Value:  fmt.Sprintf("%d días", age),
					Inline: true,
				},
				{
					Name:   "📍 Posición",
					Value:  fmt.Sprintf("%d", channel.Position),
					Inline: true,
				},
				{
					Name:   "🐌 Modo lento",
					Value:  fmt.Sprintf("%ds", channel.RateLimitPerUser),
					Inline: true,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
