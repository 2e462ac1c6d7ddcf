package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage is one of the seven fixed steps of an installation process.
//
// The persisted form of a process state is the raw `status` string (legacy enum or
// numeric stage). Stage is always derived from it through MapStatusToStage and is never
// stored verbatim.
type Stage int

const (
	StageCreation Stage = iota + 1
	StagePreparation
	StageValidation
	StageVerification
	StageTransport
	StageExecution
	StageCompletion
)

// StageCount is the number of stages in the registry.
const StageCount = 7

// Legacy raw status values written by older portal screens.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

func (s Stage) Valid() bool {
	return s >= StageCreation && s <= StageCompletion
}

// IsTerminal reports whether the stage closes the process. Only Completion does, and it
// requires the client sign-off before the process counts as finished.
func (s Stage) IsTerminal() bool {
	return s == StageCompletion
}

func (s Stage) String() string {
	if d, ok := StageByID(s); ok {
		return d.Name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// StageDescriptor describes a stage for the timeline. Icon and Color are presentation
// metadata passed through untouched.
type StageDescriptor struct {
	ID          Stage  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

var stageRegistry = [StageCount]StageDescriptor{
	{ID: StageCreation, Name: "Creación", Description: "Administrador crea el proceso", Icon: "plus", Color: "bg-blue-50"},
	{ID: StagePreparation, Name: "Alistamiento", Description: "Almacén alista materiales", Icon: "package", Color: "bg-yellow-50"},
	{ID: StageValidation, Name: "Validación", Description: "Coordinador de Tecnología revisa", Icon: "check-square", Color: "bg-purple-50"},
	{ID: StageVerification, Name: "Verificación", Description: "Técnico verifica completitud", Icon: "alert-circle", Color: "bg-orange-50"},
	{ID: StageTransport, Name: "Transporte", Description: "Traslado al sitio", Icon: "truck", Color: "bg-cyan-50"},
	{ID: StageExecution, Name: "Ejecución", Description: "Instalación", Icon: "zap", Color: "bg-green-50"},
	{ID: StageCompletion, Name: "Finalización", Description: "Requiere firma del cliente", Icon: "file-signature", Color: "bg-red-50"},
}

// Stages returns the ordered stage registry. The returned slice is a copy.
func Stages() []StageDescriptor {
	out := make([]StageDescriptor, StageCount)
	copy(out, stageRegistry[:])
	return out
}

func StageByID(id Stage) (StageDescriptor, bool) {
	if !id.Valid() {
		return StageDescriptor{}, false
	}
	return stageRegistry[id-1], true
}

// MapStatusToStage derives the stage of a raw status value. It is total: anything that is
// neither a numeric stage in [1,7] nor a known legacy value resolves to StageCreation.
// Surrounding whitespace is ignored for numeric values (" 3" is stage 3); legacy values
// must match exactly.
func MapStatusToStage(raw string) Stage {
	if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		if n >= 1 && n <= StageCount && n == float64(int(n)) {
			return Stage(int(n))
		}
	}

	switch raw {
	case StatusPending:
		return StageCreation
	case StatusInProgress:
		return StageValidation
	case StatusDone, StatusCompleted:
		return StageCompletion
	default:
		return StageCreation
	}
}

// StatusEncoding selects how a stage is written back into the raw status field.
type StatusEncoding string

const (
	// StatusEncodingLegacy collapses stages 2-6 into "in_progress". Only stages 1 and 7
	// survive a round trip through MapStatusToStage.
	StatusEncodingLegacy StatusEncoding = "legacy"
	// StatusEncodingNumeric writes the stage number itself ("1".."7").
	StatusEncodingNumeric StatusEncoding = "numeric"
)

func (e StatusEncoding) Valid() bool {
	return e == StatusEncodingLegacy || e == StatusEncodingNumeric
}

// Encode converts a stage into the raw status persisted by the backend.
func (e StatusEncoding) Encode(s Stage) string {
	if e == StatusEncodingNumeric {
		return strconv.Itoa(int(s))
	}
	return StageToRawStatus(s)
}

// StageToRawStatus is the legacy inverse mapping: 1 -> pending, 7 -> done, anything else
// -> in_progress.
func StageToRawStatus(s Stage) string {
	switch s {
	case StageCreation:
		return StatusPending
	case StageCompletion:
		return StatusDone
	default:
		return StatusInProgress
	}
}
