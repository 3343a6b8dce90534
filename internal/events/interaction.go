// Package events provides event handlers for interaction events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/tickets"
	"github.com/bwmarrin/discordgo"
)

// RegisterInteractionEvents registers all interaction-related event handlers
func RegisterInteractionEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onInteractionCreate)
}

// onInteractionCreate is called when an interaction is created (buttons, menus, modals, etc.)
// Note: Slash commands are already handled by the CommandHandler
func onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Handle message components (buttons, select menus)
	if i.Type == discordgo.InteractionMessageComponent {
		customID := i.MessageComponentData().CustomID
		logger.Debug(fmt.Sprintf("🔘 Componente clickeado: %s", customID), "Interaction")

		switch customID {
		case tickets.ButtonCreateTicket:
			deps.Workflow.HandleCreate(s, i)
		case tickets.ButtonClaimTicket:
			deps.Workflow.HandleClaim(s, i)
		case tickets.ButtonCloseTicket:
			deps.Workflow.HandleClose(s, i)
		default:
			logger.Debug(fmt.Sprintf("Componente no manejado: %s", customID), "Interaction")
		}
		return
	}
}
