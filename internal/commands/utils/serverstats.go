package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
	"github.com/bwmarrin/discordgo"
)

// createServerStatsCommand creates the /utils serverstats subcommand
func createServerStatsCommand() *discord.Command {
	return discord.NewCommand(
		"serverstats",
		"Muestra las estadísticas de moderación del servidor",
		"utils",
		serverStatsHandler,
	)
}

// serverStatsHandler handles the /utils serverstats command.
// Unlike /utils stats this reports only the invoking guild.
func serverStatsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		if guildID == "" {
			ctx.ReplyEphemeral("❌ Este comando solo funciona en un servidor.")
			return
		}

		words, action := mods.FilterConfig(guildID)
		autoRoles := mods.AutoRoles(guildID)
		unclaimed, claimed, closed := ticketReg.Counts(guildID)

		logValue := "Sin configurar"
		if channelID, ok := mods.LogChannel(guildID); ok {
			logValue = fmt.Sprintf("<#%s>", channelID)
		}

		embed := &discordgo.MessageEmbed{
			Title: "📊 Estadísticas del Servidor",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "🚫 Palabras filtradas",
					Value:  fmt.Sprintf("%d (acción: %s)", len(words), action),
					Inline: true,
				},
				{
					Name:   "🎭 Roles automáticos",
					Value:  fmt.Sprintf("%d", len(autoRoles)),
					Inline: true,
				},
				{
					Name:   "📋 Canal de registros",
					Value:  logValue,
					Inline: true,
				},
				{
					Name: "🎫 Tickets",
					Value: fmt.Sprintf("%d sin reclamar / %d reclamados / %d cerrados",
						unclaimed, claimed, closed),
					Inline: false,
				},
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if open := ticketList(guildID); open != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "Abiertos",
				Value:  open,
				Inline: false,
			})
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}

// ticketList renders the open tickets of a guild, newest last
func ticketList(guildID string) string {
	out := ""
	for _, t := range ticketReg.ListByStatus(guildID, tickets.StatusOpenUnclaimed) {
		out += fmt.Sprintf("#%04d <#%s>\n", t.Number, t.ChannelID)
	}
	for _, t := range ticketReg.ListByStatus(guildID, tickets.StatusOpenClaimed) {
		out += fmt.Sprintf("#%04d <#%s> (reclamado)\n", t.Number, t.ChannelID)
	}
	return out
}
