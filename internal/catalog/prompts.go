package catalog

// PromptType distinguishes truth prompts from dares
type PromptType string

const (
	PromptTruth PromptType = "truth"
	PromptDare  PromptType = "dare"
)

// Prompt is a single truth-or-dare challenge
type Prompt struct {
	ID   string
	Type PromptType
	Text string
}

var truthPrompts = []Prompt{
	{ID: "t1", Type: PromptTruth, Text: "¿Cuál es tu mayor miedo cuando sales de fiesta?"},
	{ID: "t2", Type: PromptTruth, Text: "¿Has mentido alguna vez sobre tu edad para entrar a un bar?"},
	{ID: "t3", Type: PromptTruth, Text: "¿Cuál fue la peor borrachera de tu vida?"},
	{ID: "t4", Type: PromptTruth, Text: "¿Te has enamorado de alguien en un bar?"},
	{ID: "t5", Type: PromptTruth, Text: "¿Cuál es lo más vergonzoso que has hecho ebrio/a?"},
	{ID: "t6", Type: PromptTruth, Text: "¿Has tenido alguna vez una cita horrible?"},
	{ID: "t7", Type: PromptTruth, Text: "¿Cuál es tu bebida secreta favorita?"},
	{ID: "t8", Type: PromptTruth, Text: "¿Has llorado alguna vez en un baño de bar?"},
}

var darePrompts = []Prompt{
	{ID: "d1", Type: PromptDare, Text: "Baila como si nadie te estuviera viendo durante 1 minuto"},
	{ID: "d2", Type: PromptDare, Text: "Imita a una celebridad hasta que alguien adivine quién es"},
	{ID: "d3", Type: PromptDare, Text: "Toma tu próxima bebida sin usar las manos"},
	{ID: "d4", Type: PromptDare, Text: "Canta una canción romántica a la persona de tu derecha"},
	{ID: "d5", Type: PromptDare, Text: "Habla con acento extranjero durante los próximos 10 minutos"},
	{ID: "d6", Type: PromptDare, Text: "Haz 10 flexiones o toma 2 tragos"},
	{ID: "d7", Type: PromptDare, Text: "Cuenta un chiste malo hasta que alguien se ría"},
	{ID: "d8", Type: PromptDare, Text: "Intercambia una prenda de ropa con alguien por 5 minutos"},
}

// Prompts returns a copy of the prompt list for the given type
func Prompts(t PromptType) []Prompt {
	var src []Prompt
	switch t {
	case PromptTruth:
		src = truthPrompts
	case PromptDare:
		src = darePrompts
	default:
		return nil
	}
	out := make([]Prompt, len(src))
	copy(out, src)
	return out
}
