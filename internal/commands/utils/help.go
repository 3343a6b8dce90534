package utils

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de PancyGuard Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/utils stats` - Estadísticas del bot\n" +
				"• `/utils serverinfo` - Información del servidor\n" +
				"• `/utils userinfo [usuario]` - Información de un usuario\n" +
				"• `/utils serverstats` - Estadísticas de moderación del servidor\n" +
				"• `/utils poll <pregunta> <opciones>` - Crea una encuesta\n" +
				"• `/utils memberstats [usuario]` - Analiza un miembro\n" +
				"• `/utils channelstats [canal]` - Analiza un canal\n" +
				"• `/mod banned` - Lista los usuarios baneados\n" +
				"• `/mod muteall` - Silencia tu canal de voz\n" +
				"• `/mod ban <usuario> [razón]` - Banea a un usuario\n" +
				"• `/mod tempban <usuario> <duración> [razón]` - Banea temporalmente\n" +
				"• `/mod kick <usuario> [razón]` - Expulsa a un usuario\n" +
				"• `/mod warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/mod warnings <usuario>` - Lista las advertencias\n" +
				"• `/mod clearwarns <usuario>` - Limpia las advertencias\n" +
				"• `/mod mute <usuario> <duración> [razón]` - Aísla a un usuario\n" +
				"• `/autorole add <rol>` - Añade un rol automático\n" +
				"• `/badword add <palabra>` - Añade una palabra al filtro\n" +
				"• `/badword action <accion>` - Configura la acción del filtro\n" +
				"• `/log set <canal>` - Establece el canal de registros\n" +
				"• `/ticket setup [canal]` - Publica el panel de tickets\n" +
				"• `/ticket close` - Cierra el ticket actual\n" +
				"• `/ticket list` - Lista los tickets abiertos",
		)
	}()
	return nil
}
