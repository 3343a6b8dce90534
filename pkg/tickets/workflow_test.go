package tickets

import (
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// newTestWorkflow builds a workflow over fresh stores and a session that
// never reaches Discord (responses fail and are only logged)
func newTestWorkflow() (*Workflow, *Registry, *discordgo.Session) {
	registry := NewRegistry()
	workflow := NewWorkflow(registry, moderation.NewStore(), "Staff")
	session, _ := discordgo.New("Bot test-token")
	return workflow, registry, session
}

// buttonPress builds a component interaction from a guild member with the
// given permission bits
func buttonPress(guildID, channelID, userID string, perms int64) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID:   guildID,
			ChannelID: channelID,
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: userID},
				Permissions: perms,
			},
		},
	}
}

func TestClaimButtonRequiresManageChannels(t *testing.T) {
	workflow, registry, session := newTestWorkflow()

	number := registry.NextNumber("guild1")
	registry.Create("guild1", "channel1", "owner1", number)

	// The owner sees the channel but carries no staff permissions
	workflow.HandleClaim(session, buttonPress("guild1", "channel1", "owner1", 0))

	ticket, ok := registry.Get("channel1")
	if !ok {
		t.Fatal("ticket should still exist")
	}
	if ticket.Status != StatusOpenUnclaimed {
		t.Errorf("Status = %v, want %v", ticket.Status, StatusOpenUnclaimed)
	}
	if ticket.Claimer != "" {
		t.Errorf("Claimer = %v, want empty", ticket.Claimer)
	}
}

func TestClaimButtonAllowsManageChannels(t *testing.T) {
	workflow, registry, session := newTestWorkflow()

	number := registry.NextNumber("guild1")
	registry.Create("guild1", "channel1", "owner1", number)

	workflow.HandleClaim(session, buttonPress("guild1", "channel1", "staff1", discordgo.PermissionManageChannels))

	ticket, _ := registry.Get("channel1")
	if ticket.Status != StatusOpenClaimed {
		t.Errorf("Status = %v, want %v", ticket.Status, StatusOpenClaimed)
	}
	if ticket.Claimer != "staff1" {
		t.Errorf("Claimer = %v, want staff1", ticket.Claimer)
	}
}

func TestCloseButtonRequiresManageChannels(t *testing.T) {
	workflow, registry, session := newTestWorkflow()

	number := registry.NextNumber("guild1")
	registry.Create("guild1", "channel1", "owner1", number)

	workflow.HandleClose(session, buttonPress("guild1", "channel1", "owner1", 0))

	ticket, ok := registry.Get("channel1")
	if !ok {
		t.Fatal("ticket should still exist")
	}
	if ticket.Status != StatusOpenUnclaimed {
		t.Errorf("Status = %v, want %v", ticket.Status, StatusOpenUnclaimed)
	}
	if ticket.ClosedBy != "" {
		t.Errorf("ClosedBy = %v, want empty", ticket.ClosedBy)
	}
}

func TestCloseButtonAllowsManageChannels(t *testing.T) {
	workflow, registry, session := newTestWorkflow()

	number := registry.NextNumber("guild1")
	registry.Create("guild1", "channel1", "owner1", number)

	workflow.HandleClose(session, buttonPress("guild1", "channel1", "staff1", discordgo.PermissionManageChannels))

	ticket, _ := registry.Get("channel1")
	if ticket.Status != StatusClosed {
		t.Errorf("Status = %v, want %v", ticket.Status, StatusClosed)
	}
	if ticket.ClosedBy != "staff1" {
		t.Errorf("ClosedBy = %v, want staff1", ticket.ClosedBy)
	}
}

func TestCanManageTickets(t *testing.T) {
	tests := []struct {
		name string
		i    *discordgo.InteractionCreate
		want bool
	}{
		{
			"manage channels",
			buttonPress("g", "c", "u", discordgo.PermissionManageChannels),
			true,
		},
		{
			"manage channels among others",
			buttonPress("g", "c", "u", discordgo.PermissionManageChannels|discordgo.PermissionKickMembers),
			true,
		},
		{
			"no permissions",
			buttonPress("g", "c", "u", 0),
			false,
		},
		{
			"unrelated permissions",
			buttonPress("g", "c", "u", discordgo.PermissionSendMessages),
			false,
		},
		{
			"no member (DM)",
			&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{User: &discordgo.User{ID: "u"}}},
			false,
		},
	}

	for _, tt := range tests {
		if got := canManageTickets(tt.i); got != tt.want {
			t.Errorf("%s: canManageTickets = %v, want %v", tt.name, got, tt.want)
		}
	}
}
