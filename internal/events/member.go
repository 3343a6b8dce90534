// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server.
// Assigns the guild's configured auto-roles and sends the welcome message.
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s#%s en servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	// Asignar roles automáticos
	assignAutoRoles(s, m)

	// Obtener información del servidor
	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
		return
	}

	// Enviar mensaje de bienvenida al canal del sistema
	if guild.SystemChannelID != "" {
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       "¡Bienvenido/a! 🎉",
			Description: fmt.Sprintf("Dale la bienvenida a <@%s>\nAhora somos **%d** miembros.", m.User.ID, guild.MemberCount),
			Color:       0x00ff00,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("128"),
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    guild.Name,
				IconURL: guild.IconURL("64"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		_, err := s.ChannelMessageSendEmbed(guild.SystemChannelID, welcomeEmbed)
		if err != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Member")
		}
	}

	// Entrada en el canal de registros si está configurado
	if channelID, ok := deps.Mods.LogChannel(m.GuildID); ok {
		_, err := s.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("📥 <@%s> se ha unido al servidor.", m.User.ID),
			Color:       0x57F287,
			Timestamp:   time.Now().Format(time.RFC3339),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error enviando registro de entrada: %v", err), "Member")
		}
	}
}

// assignAutoRoles grants every configured auto-role to the new member.
// Roles the member already carries are skipped, so a re-delivered join
// event never duplicates work.
func assignAutoRoles(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	roles := deps.Mods.AutoRoles(m.GuildID)
	if len(roles) == 0 {
		return
	}

	current := make(map[string]struct{}, len(m.Roles))
	for _, id := range m.Roles {
		current[id] = struct{}{}
	}

	for _, roleID := range roles {
		if _, has := current[roleID]; has {
			continue
		}
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, roleID); err != nil {
			logger.Error(fmt.Sprintf("Error asignando rol automático %s a %s: %v", roleID, m.User.ID, err), "Member")
			continue
		}
		logger.Debug(fmt.Sprintf("Rol automático %s asignado a %s", roleID, m.User.Username), "Member")
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s#%s salió del servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	// Enviar mensaje de despedida
	guild, err := s.Guild(m.GuildID)
	if err == nil && guild.SystemChannelID != "" {
		farewellEmbed := &discordgo.MessageEmbed{
			Description: fmt.Sprintf("👋 **%s#%s** ha salido del servidor.\nAhora somos **%d** miembros.",
				m.User.Username, m.User.Discriminator, guild.MemberCount),
			Color: 0xe74c3c,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("64"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		_, sendErr := s.ChannelMessageSendEmbed(guild.SystemChannelID, farewellEmbed)
		if sendErr != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de despedida: %v", sendErr), "Member")
		}
	}
}
