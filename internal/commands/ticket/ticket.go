// Package ticket - /ticket setup, close and list commands
package ticket

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
	"github.com/bwmarrin/discordgo"
)

// createSetupCommand creates the /ticket setup subcommand
func createSetupCommand() *discord.Command {
	return discord.NewCommand(
		"setup",
		"Publica el panel de creación de tickets",
		"ticket",
		setupHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal donde publicar el panel (por defecto, el actual)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageGuild)
}

// setupHandler handles the /ticket setup command
func setupHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID
	if channel := ctx.GetChannelOption("canal"); channel != nil {
		channelID = channel.ID
	}

	if err := workflow.SendPanel(ctx.Session, channelID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error publicando el panel: %v", err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Panel de tickets publicado en <#%s>.", channelID))
}

// createCloseCommand creates the /ticket close subcommand
func createCloseCommand() *discord.Command {
	return discord.NewCommand(
		"close",
		"Cierra el ticket del canal actual",
		"ticket",
		closeHandler,
	)
}

// closeHandler handles the /ticket close command. The ticket owner or the
// staff can close; closing a channel that isn't an open ticket is rejected.
func closeHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID

	current, ok := workflow.Registry().Get(channelID)
	if !ok {
		return ctx.ReplyEphemeral("❌ Este canal no es un ticket.")
	}

	actorID := ctx.User().ID
	isOwner := current.Owner == actorID
	isStaff := ctx.Member() != nil && ctx.Member().Permissions&discordgo.PermissionManageChannels != 0
	if !isOwner && !isStaff {
		return ctx.ReplyEphemeral("❌ Solo el creador del ticket o el staff pueden cerrarlo.")
	}

	ticket, ok := workflow.CloseChannel(ctx.Session, channelID, actorID)
	if !ok {
		return ctx.ReplyEphemeral("❌ Este ticket ya está cerrado.")
	}

	return ctx.Reply(fmt.Sprintf("🔒 Ticket **#%04d** cerrado por <@%s>.", ticket.Number, actorID))
}

// createListCommand creates the /ticket list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista los tickets abiertos del servidor",
		"ticket",
		listHandler,
	).WithUserPermissions(discordgo.PermissionManageChannels)
}

// listHandler handles the /ticket list command
func listHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	reg := workflow.Registry()

	unclaimed := reg.ListByStatus(guildID, tickets.StatusOpenUnclaimed)
	claimed := reg.ListByStatus(guildID, tickets.StatusOpenClaimed)

	if len(unclaimed) == 0 && len(claimed) == 0 {
		return ctx.ReplyEphemeral("ℹ️ No hay tickets abiertos.")
	}

	var sb strings.Builder
	for _, t := range unclaimed {
		sb.WriteString(fmt.Sprintf("🎫 **#%04d** <#%s> — creado por <@%s> (sin reclamar)\n", t.Number, t.ChannelID, t.Owner))
	}
	for _, t := range claimed {
		sb.WriteString(fmt.Sprintf("🙋 **#%04d** <#%s> — reclamado por <@%s>\n", t.Number, t.ChannelID, t.Claimer))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎫 Tickets abiertos (%d)", len(unclaimed)+len(claimed)),
		Description: sb.String(),
		Color:       0x5865F2,
	}

	return ctx.ReplyEmbed(embed)
}
