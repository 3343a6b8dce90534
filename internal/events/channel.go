// Package events provides event handlers for channel events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterChannelEvents registers all channel-related event handlers
func RegisterChannelEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onChannelDelete)
}

// onChannelDelete is called when a channel is deleted. If the channel was
// a tracked ticket, its record is dropped regardless of state.
func onChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	logger.Debug(fmt.Sprintf("🗑️ Canal eliminado: %s", c.ID), "Channel")
	deps.Workflow.HandleChannelDelete(c.ID)
}
