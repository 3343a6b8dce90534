// Package mod - /mod muteall and /mod unmuteall commands
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createMuteAllCommand creates the /mod muteall subcommand
func createMuteAllCommand() *discord.Command {
	return discord.NewCommand(
		"muteall",
		"Silencia a todos en tu canal de voz",
		"mod",
		muteAllHandler,
	).WithUserPermissions(discordgo.PermissionVoiceMuteMembers).
		WithBotPermissions(discordgo.PermissionVoiceMuteMembers)
}

// muteAllHandler handles the /mod muteall command
func muteAllHandler(ctx *discord.CommandContext) error {
	return setVoiceMuteAll(ctx, true)
}

// createUnmuteAllCommand creates the /mod unmuteall subcommand
func createUnmuteAllCommand() *discord.Command {
	return discord.NewCommand(
		"unmuteall",
		"Quita el silencio a todos en tu canal de voz",
		"mod",
		unmuteAllHandler,
	).WithUserPermissions(discordgo.PermissionVoiceMuteMembers).
		WithBotPermissions(discordgo.PermissionVoiceMuteMembers)
}

// unmuteAllHandler handles the /mod unmuteall command
func unmuteAllHandler(ctx *discord.CommandContext) error {
	return setVoiceMuteAll(ctx, false)
}

// setVoiceMuteAll server-mutes or unmutes every non-bot member sharing
// the invoker's voice channel. Members that fail are skipped.
func setVoiceMuteAll(ctx *discord.CommandContext, mute bool) error {
	guildID := ctx.Interaction.GuildID

	guild, err := ctx.Session.State.Guild(guildID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo obtener el servidor: %v", err))
	}

	// Locate the invoker's voice channel
	channelID := ""
	for _, vs := range guild.VoiceStates {
		if vs.UserID == ctx.User().ID {
			channelID = vs.ChannelID
			break
		}
	}
	if channelID == "" {
		return ctx.ReplyEphemeral("❌ Debes estar en un canal de voz para usar este comando.")
	}

	count := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID != channelID || vs.Mute == mute {
			continue
		}
		if member, err := ctx.Session.GuildMember(guildID, vs.UserID); err == nil && member.User.Bot {
			continue
		}
		if err := ctx.Session.GuildMemberMute(guildID, vs.UserID, mute); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo cambiar el silencio de %s: %v", vs.UserID, err), "Mod")
			continue
		}
		count++
	}

	if mute {
		return ctx.Reply(fmt.Sprintf("🔇 Se silenció a **%d** miembros del canal de voz.", count))
	}
	return ctx.Reply(fmt.Sprintf("🔊 Se quitó el silencio a **%d** miembros del canal de voz.", count))
}
