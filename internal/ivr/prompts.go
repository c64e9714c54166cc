package ivr

// Prompt texts for both supported languages. The welcome and
// language-retry prompts are bilingual by design since no language has
// been selected yet.
const (
	promptWelcome = "Welcome to InspireWorks demo IVR. " +
		"For English, press 1. " +
		"Para español, oprima el dos."
	promptLanguageRetry = "Invalid input. Press 1 for English. Press 2 for Spanish."
	promptNoInput       = "No input received. Goodbye."
)

var menuPrompts = map[Language]string{
	LanguageEnglish: "You selected English. Press 1 to hear a message. Press 2 to talk to an associate.",
	LanguageSpanish: "Usted seleccionó español. Oprima uno para escuchar un mensaje. Oprima dos para hablar con un representante.",
}

var listenPrompts = map[Language]string{
	LanguageEnglish: "Please listen to this message.",
	LanguageSpanish: "Por favor escuche este mensaje.",
}

var noAssociatePrompts = map[Language]string{
	LanguageEnglish: "No associate available. Goodbye.",
	LanguageSpanish: "No hay representantes disponibles. Adiós.",
}

var menuRetryPrompts = map[Language]string{
	LanguageEnglish: "Invalid input. Press 1 or 2.",
	LanguageSpanish: "Entrada inválida. Oprima uno o dos.",
}

func prompt(texts map[Language]string, lang Language) string {
	return texts[lang.OrDefault()]
}
