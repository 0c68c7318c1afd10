package interpreter

import (
	"fmt"

	"midosis/pkg/dosistypes"
)

// ConfirmationText renders the spoken confirmation for a parsed command.
// The result is plain text for the TTS collaborator; no audio is produced
// here.
func ConfirmationText(cmd dosistypes.ParsedCommand) string {
	name := cmd.EntityName
	if name == "" {
		name = "el medicamento"
	}

	switch cmd.Action {
	case dosistypes.ActionAddMedication:
		text := fmt.Sprintf("Voy a agregar %s", name)
		if cmd.HasDosage() {
			text += fmt.Sprintf(" de %d %s", cmd.DosageAmount, cmd.DosageUnit)
		}
		if cmd.TimeOfDay != nil {
			text += fmt.Sprintf(". Te recordaré a las %s", cmd.TimeOfDay)
		}
		return text + "."
	case dosistypes.ActionDeleteMedication:
		return fmt.Sprintf("Eliminando %s de tus recordatorios.", name)
	case dosistypes.ActionListMedications:
		return "Mostrando tus medicamentos registrados."
	case dosistypes.ActionSetReminder:
		return fmt.Sprintf("Recordatorio establecido para %s.", name)
	case dosistypes.ActionCheckMedication:
		return fmt.Sprintf("Verificando la toma de %s.", name)
	case dosistypes.ActionCheckToday:
		return "Verificando tus medicamentos para hoy."
	default:
		return "Lo siento, no entendí el comando. ¿Podrías repetirlo?"
	}
}
