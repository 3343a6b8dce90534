package utils

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// pollEmojis are the reaction choices, one per option
var pollEmojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// createPollCommand creates the /utils poll subcommand
func createPollCommand() *discord.Command {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "pregunta",
			Description: "La pregunta de la encuesta",
			Required:    true,
		},
	}
	for i := 1; i <= len(pollEmojis); i++ {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("opcion%d", i),
			Description: fmt.Sprintf("Opción %d", i),
			Required:    i <= 2,
		})
	}

	return discord.NewCommand(
		"poll",
		"Crea una encuesta con reacciones",
		"utils",
		pollHandler,
	).WithOptions(options...)
}

// pollHandler handles the /utils poll command
func pollHandler(ctx *discord.CommandContext) error {
	question := ctx.GetStringOption("pregunta")
	if question == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una pregunta.")
	}

	var options []string
	for i := 1; i <= len(pollEmojis); i++ {
		if opt := ctx.GetStringOption(fmt.Sprintf("opcion%d", i)); opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) < 2 {
		return ctx.ReplyEphemeral("❌ Una encuesta necesita al menos dos opciones.")
	}

	lines := make([]string, 0, len(options))
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("%s %s", pollEmojis[i], opt))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 %s", question),
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
	}

	if err := ctx.ReplyEmbed(embed); err != nil {
		return err
	}

	// Fetch the reply to react on it
	go func() {
		defer errors.RecoverMiddleware()()

		msg, err := ctx.Session.InteractionResponse(ctx.Interaction.Interaction)
		if err != nil {
			logger.Warn(fmt.Sprintf("No se pudo obtener el mensaje de la encuesta: %v", err), "Poll")
			return
		}
		for i := range options {
			if err := ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, pollEmojis[i]); err != nil {
				logger.Warn(fmt.Sprintf("No se pudo añadir la reacción %s: %v", pollEmojis[i], err), "Poll")
			}
		}
	}()

	return nil
}
