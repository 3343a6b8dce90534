// Package events provides event handlers for message events
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// timeoutDuration is the fixed suspension applied by the timeout filter action
const timeoutDuration = 5 * time.Minute

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
}

// onMessageCreate is called when a new message is created
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar mensajes de bots
	if m.Author.Bot {
		return
	}

	// Solo filtrar mensajes de servidores
	if m.GuildID == "" {
		return
	}

	result := deps.Filter.Evaluate(m.GuildID, m.Content)
	if !result.Matched {
		return
	}

	applyFilterAction(s, m, result)
}

// applyFilterAction executes the configured response to a filter match.
// Every action deletes the message; warn and timeout add their own effect.
// Failures on one guild's message never abort processing for others.
func applyFilterAction(s *discordgo.Session, m *discordgo.MessageCreate, result moderation.MatchResult) {
	logger.Info(fmt.Sprintf("🚫 Palabra prohibida detectada (%s) de %s en %s",
		strings.Join(result.Words, ", "), m.Author.Username, m.GuildID), "Filter")

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		logger.Error(fmt.Sprintf("Error eliminando mensaje filtrado: %v", err), "Filter")
	}

	switch result.Action {
	case moderation.ActionWarn:
		count := deps.Mods.AddWarning(m.GuildID, m.Author.ID, "Uso de palabras prohibidas", s.State.User.ID)

		embed := &discordgo.MessageEmbed{
			Title:       "⚠️ Advertencia",
			Description: fmt.Sprintf("<@%s>, tu mensaje contenía palabras prohibidas.\nAdvertencias acumuladas: **%d**", m.Author.ID, count),
			Color:       0xFFFF00,
		}
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando advertencia: %v", err), "Filter")
		}

	case moderation.ActionTimeout:
		until := time.Now().Add(timeoutDuration)
		if err := s.GuildMemberTimeout(m.GuildID, m.Author.ID, &until); err != nil {
			// Sin permisos para aislar: avisar en el canal y continuar
			logger.Warn(fmt.Sprintf("No se pudo aislar a %s: %v", m.Author.ID, err), "Filter")
			_, sendErr := s.ChannelMessageSend(m.ChannelID,
				fmt.Sprintf("⚠️ <@%s> usó palabras prohibidas, pero no tengo permisos para aislarlo.", m.Author.ID))
			if sendErr != nil {
				logger.Error(fmt.Sprintf("Error enviando aviso de permisos: %v", sendErr), "Filter")
			}
		} else {
			_, err := s.ChannelMessageSend(m.ChannelID,
				fmt.Sprintf("⏳ <@%s> ha sido aislado 5 minutos por usar palabras prohibidas.", m.Author.ID))
			if err != nil {
				logger.Error(fmt.Sprintf("Error enviando aviso de aislamiento: %v", err), "Filter")
			}
		}
	}

	sendFilterLog(s, m, result)
	publishFilterEvent(m, result)
}

// publishFilterEvent mirrors the filter hit to the other Pancy services
func publishFilterEvent(m *discordgo.MessageCreate, result moderation.MatchResult) {
	mc := mqtt.Get()
	if mc == nil || !mc.IsConnected() {
		return
	}

	err := mc.Publish("pancyguard/events/filter", map[string]interface{}{
		"guildId":   m.GuildID,
		"channelId": m.ChannelID,
		"userId":    m.Author.ID,
		"words":     result.Words,
		"action":    string(result.Action),
		"timestamp": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar el evento de filtro: %v", err), "Filter")
	}
}

// sendFilterLog reports the filter hit to the guild's log channel, if bound
func sendFilterLog(s *discordgo.Session, m *discordgo.MessageCreate, result moderation.MatchResult) {
	logChannel, ok := deps.Mods.LogChannel(m.GuildID)
	if !ok {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "🚫 Mensaje filtrado",
		Color: 0xFFA500,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usuario", Value: fmt.Sprintf("<@%s>", m.Author.ID), Inline: true},
			{Name: "Canal", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
			{Name: "Acción", Value: string(result.Action), Inline: true},
			{Name: "Palabras", Value: strings.Join(result.Words, ", ")},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(logChannel, embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando log de filtro: %v", err), "Filter")
	}
}
