package tickets

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
)

// Component custom IDs routed to the workflow by the interaction handler
const (
	ButtonCreateTicket = "create_ticket"
	ButtonClaimTicket  = "claim_ticket"
	ButtonCloseTicket  = "close_ticket"
)

// Workflow drives the ticket state machine. The registry transition is
// always applied first; Discord-side effects that fail afterwards are
// reported to the actor but never roll back the in-memory record.
type Workflow struct {
	registry      *Registry
	mods          *moderation.Store
	staffRoleName string
}

// NewWorkflow creates a workflow over the given registry.
// staffRoleName is the role granted access to every ticket channel.
func NewWorkflow(registry *Registry, mods *moderation.Store, staffRoleName string) *Workflow {
	return &Workflow{
		registry:      registry,
		mods:          mods,
		staffRoleName: staffRoleName,
	}
}

// Registry exposes the backing registry for read-only reporting
func (w *Workflow) Registry() *Registry {
	return w.registry
}

// SendPanel posts the ticket panel with the create button to a channel
func (w *Workflow) SendPanel(s *discordgo.Session, channelID string) error {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "🎫 Sistema de Tickets",
				Description: "¿Necesitas ayuda? Pulsa el botón para abrir un ticket privado con el staff.",
				Color:       0x5865F2,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Crear Ticket",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonCreateTicket,
						Emoji:    &discordgo.ComponentEmoji{Name: "🎫"},
					},
				},
			},
		},
	})
	return err
}

// HandleCreate processes a press of the create button: allocates a ticket
// number, creates the private channel and inserts the unclaimed record.
func (w *Workflow) HandleCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	guildID := i.GuildID
	userID := interactionUserID(i)

	number := w.registry.NextNumber(guildID)
	name := fmt.Sprintf("ticket-%04d", number)

	overwrites := []*discordgo.PermissionOverwrite{
		{
			// @everyone shares the guild id
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    userID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		},
		{
			ID:    s.State.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionManageChannels,
		},
	}

	if staffID := w.findStaffRole(s, guildID); staffID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    staffID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		})
	}

	channel, err := s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                fmt.Sprintf("Ticket de <@%s>", userID),
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo crear el canal del ticket: %v", err), "Tickets")
		respondEphemeral(s, i, "❌ No se pudo crear el ticket. Inténtalo de nuevo más tarde.")
		return
	}

	ticket := w.registry.Create(guildID, channel.ID, userID, number)

	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", userID),
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       fmt.Sprintf("🎫 Ticket #%04d", ticket.Number),
				Description: "Describe tu problema y el staff te atenderá en breve.",
				Color:       0x57F287,
				Timestamp:   ticket.CreatedAt.Format(time.RFC3339),
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Reclamar",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonClaimTicket,
						Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
					},
					discordgo.Button{
						Label:    "Cerrar",
						Style:    discordgo.DangerButton,
						CustomID: ButtonCloseTicket,
						Emoji:    &discordgo.ComponentEmoji{Name: "🔒"},
					},
				},
			},
		},
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo enviar el mensaje inicial del ticket %s: %v", channel.ID, err), "Tickets")
	}

	respondEphemeral(s, i, fmt.Sprintf("✅ Ticket creado: <#%s>", channel.ID))
	logger.Info(fmt.Sprintf("Ticket #%04d creado por %s en %s", ticket.Number, userID, guildID), "Tickets")
}

// HandleClaim processes a press of the claim button inside a ticket channel
func (w *Workflow) HandleClaim(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID := i.ChannelID
	userID := interactionUserID(i)

	// Components bypass Discord's slash-command permission checks, so the
	// gate has to live here. The owner can see their ticket but must not
	// be able to claim it away from the staff.
	if !canManageTickets(i) {
		respondEphemeral(s, i, "❌ Necesitas el permiso de gestionar canales para reclamar tickets.")
		return
	}

	if _, ok := w.registry.Get(channelID); !ok {
		respondEphemeral(s, i, "❌ Este canal no es un ticket activo.")
		return
	}

	if !w.registry.Claim(channelID, userID) {
		t, _ := w.registry.Get(channelID)
		if t.Status == StatusClosed {
			respondEphemeral(s, i, "❌ Este ticket ya está cerrado.")
		} else {
			respondEphemeral(s, i, fmt.Sprintf("❌ Este ticket ya fue reclamado por <@%s>.", t.Claimer))
		}
		return
	}

	respond(s, i, fmt.Sprintf("🙋 <@%s> ha reclamado este ticket.", userID))
	logger.Info(fmt.Sprintf("Ticket %s reclamado por %s", channelID, userID), "Tickets")
}

// HandleClose processes a press of the close button inside a ticket channel.
// The button is staff-only; the owner closes through the slash command.
func (w *Workflow) HandleClose(s *discordgo.Session, i *discordgo.InteractionCreate) {
	channelID := i.ChannelID
	userID := interactionUserID(i)

	if !canManageTickets(i) {
		respondEphemeral(s, i, "❌ Necesitas el permiso de gestionar canales para cerrar tickets.")
		return
	}

	ticket, ok := w.registry.Close(channelID, userID)
	if !ok {
		respondEphemeral(s, i, "❌ Este canal no es un ticket abierto.")
		return
	}

	respond(s, i, fmt.Sprintf("🔒 Ticket cerrado por <@%s>.", userID))
	w.archiveChannel(s, ticket)
	w.sendCloseLog(s, ticket)
}

// CloseChannel closes the ticket for a channel outside of a button press
// (slash command path). Returns ok=false when the channel is not an open
// ticket.
func (w *Workflow) CloseChannel(s *discordgo.Session, channelID, actorID string) (Ticket, bool) {
	ticket, ok := w.registry.Close(channelID, actorID)
	if !ok {
		return Ticket{}, false
	}

	w.archiveChannel(s, ticket)
	w.sendCloseLog(s, ticket)
	return ticket, true
}

// HandleChannelDelete drops the record when Discord reports the channel gone.
// Forced transition: applies regardless of the ticket's current state.
func (w *Workflow) HandleChannelDelete(channelID string) {
	if w.registry.Remove(channelID) {
		logger.Info(fmt.Sprintf("Registro de ticket eliminado para el canal %s", channelID), "Tickets")
	}
}

// archiveChannel locks the closed ticket channel: everyone loses send
// access and the channel is renamed. Failures are logged, never fatal.
// Setting the @everyone overwrite replaces it wholesale, so the view
// deny from creation is dropped and the closed ticket becomes readable
// guild-wide; closed channels are expected to be deleted by staff.
func (w *Workflow) archiveChannel(s *discordgo.Session, ticket Ticket) {
	err := s.ChannelPermissionSet(ticket.ChannelID, ticket.GuildID, discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo bloquear el canal del ticket %s: %v", ticket.ChannelID, err), "Tickets")
	}

	_, err = s.ChannelEdit(ticket.ChannelID, &discordgo.ChannelEdit{
		Name: fmt.Sprintf("cerrado-%04d", ticket.Number),
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo renombrar el canal del ticket %s: %v", ticket.ChannelID, err), "Tickets")
	}
}

// sendCloseLog emits the structured close entry to the guild's log channel
func (w *Workflow) sendCloseLog(s *discordgo.Session, ticket Ticket) {
	logChannel, ok := w.mods.LogChannel(ticket.GuildID)
	if !ok {
		return
	}

	claimer := "Nadie"
	if ticket.Claimer != "" {
		claimer = fmt.Sprintf("<@%s>", ticket.Claimer)
	}

	_, err := s.ChannelMessageSendEmbed(logChannel, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎫 Ticket #%04d cerrado", ticket.Number),
		Color: 0xED4245,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Creador", Value: fmt.Sprintf("<@%s>", ticket.Owner), Inline: true},
			{Name: "Reclamado por", Value: claimer, Inline: true},
			{Name: "Cerrado por", Value: fmt.Sprintf("<@%s>", ticket.ClosedBy), Inline: true},
		},
		Timestamp: ticket.ClosedAt.Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo enviar el log del ticket %s: %v", ticket.ChannelID, err), "Tickets")
	}
}

// findStaffRole resolves the configured staff role name to a role id
func (w *Workflow) findStaffRole(s *discordgo.Session, guildID string) string {
	if w.staffRoleName == "" {
		return ""
	}

	roles, err := s.GuildRoles(guildID)
	if err != nil {
		if guild, stateErr := s.State.Guild(guildID); stateErr == nil {
			roles = guild.Roles
		} else {
			return ""
		}
	}

	for _, role := range roles {
		if role.Name == w.staffRoleName {
			return role.ID
		}
	}
	return ""
}

// canManageTickets reports whether the interaction actor may claim or
// close tickets (Manage Channels, same bar as the staff)
func canManageTickets(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageChannels != 0
}

// interactionUserID extracts the acting user from guild or DM interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error respondiendo a la interacción: %v", err), "Tickets")
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error respondiendo a la interacción: %v", err), "Tickets")
	}
}
