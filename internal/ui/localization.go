package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyInitialTitle = "initial_title"
	KeyWelcomeText  = "welcome_text"
	KeyGoToStateA   = "go_to_state_a"
	KeyGoToStateB   = "go_to_state_b"
	KeyGoToStateC   = "go_to_state_c"
	KeyGoBack       = "go_back_initial"
	KeyExit         = "exit"
	KeyFileURLLabel = "file_url_label"
	KeyDownload     = "download"
	KeyStateATitle  = "state_a_title"
	KeyInStateA     = "you_are_in_state_a"
	KeyStateBTitle  = "state_b_title"
	KeyInStateB     = "you_are_in_state_b"
	KeyStateCTitle  = "state_c_title"
	KeyInStateC     = "you_are_in_state_c"
	KeyCloseStateC  = "close_state_c"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyInitialTitle: "Initial State",
		KeyWelcomeText:  "Welcome! Choose where to go.",
		KeyGoToStateA:   "Go to State A",
		KeyGoToStateB:   "Go to State B",
		KeyGoToStateC:   "Open State C",
		KeyGoBack:       "Back to Start",
		KeyExit:         "Exit",
		KeyFileURLLabel: "File URL",
		KeyDownload:     "Download",
		KeyStateATitle:  "State A",
		KeyInStateA:     "You are in State A",
		KeyStateBTitle:  "State B",
		KeyInStateB:     "You are in State B",
		KeyStateCTitle:  "State C",
		KeyInStateC:     "You are in State C",
		KeyCloseStateC:  "Close",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyInitialTitle: "Начальное состояние",
		KeyWelcomeText:  "Добро пожаловать! Выберите, куда перейти.",
		KeyGoToStateA:   "Перейти в состояние A",
		KeyGoToStateB:   "Перейти в состояние B",
		KeyGoToStateC:   "Открыть состояние C",
		KeyGoBack:       "Вернуться в начало",
		KeyExit:         "Выход",
		KeyFileURLLabel: "URL файла",
		KeyDownload:     "Скачать",
		KeyStateATitle:  "Состояние A",
		KeyInStateA:     "Вы в состоянии A",
		KeyStateBTitle:  "Состояние B",
		KeyInStateB:     "Вы в состоянии B",
		KeyStateCTitle:  "Состояние C",
		KeyInStateC:     "Вы в состоянии C",
		KeyCloseStateC:  "Закрыть",
	}
}
