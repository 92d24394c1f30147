package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyBack            = "back"
	KeyHome            = "home"
	KeyGo              = "go"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyEnterURL        = "enter_url"
	KeySettingsSaved   = "settings_saved"
	KeyInvalidURL      = "invalid_url"
	KeyPleaseEnterURL  = "please_enter_url"
	KeyLoading         = "loading"
	KeyLoadFailed      = "load_failed"
	KeyMaxAliveViews   = "max_alive_views"
	KeyProxyMode       = "proxy_mode"
	KeyProxyCustomURL  = "proxy_custom_url"
	KeyProxyFallback   = "proxy_fallback"
	KeyTheme           = "theme"
	KeyDownloadDir     = "download_directory"
	KeyLogSessionsKeep = "log_sessions_keep"
	KeyClearCaches     = "clear_caches"
	KeyCachesCleared   = "caches_cleared"
	KeyHomeWelcome     = "home_welcome"
	KeyHomeHint        = "home_hint"
	KeySearchResults   = "search_results"
	KeyChannelUploads  = "channel_uploads"
	KeyInstallingDeps  = "installing_deps"
	KeyDepsMissing     = "deps_missing"
	KeyInstall         = "install"
	KeyToastPosition   = "toast_position"
	KeyCacheStats      = "cache_stats"
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "YT Browser",
		KeyBack:            "Back",
		KeyHome:            "Home",
		KeyGo:              "Go",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyEnterURL:        "Enter a YouTube URL or search query",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyInvalidURL:      "Invalid URL",
		KeyPleaseEnterURL:  "Please enter a URL or query",
		KeyLoading:         "Loading...",
		KeyLoadFailed:      "Failed to load",
		KeyMaxAliveViews:   "Max Mounted Views",
		KeyProxyMode:       "Proxy Mode",
		KeyProxyCustomURL:  "Custom Proxy URL",
		KeyProxyFallback:   "Fall back to system proxy",
		KeyTheme:           "Theme",
		KeyDownloadDir:     "Download Directory",
		KeyLogSessionsKeep: "Log Sessions to Keep",
		KeyClearCaches:     "Clear Caches",
		KeyCachesCleared:   "Caches cleared",
		KeyHomeWelcome:     "Welcome to YT Browser",
		KeyHomeHint:        "Paste a video, playlist, or channel URL above to start browsing",
		KeySearchResults:   "Search results for",
		KeyChannelUploads:  "Channel uploads",
		KeyInstallingDeps:  "Installing dependencies...",
		KeyDepsMissing:     "Required tools are missing",
		KeyInstall:         "Install",
		KeyToastPosition:   "Notification Position",
		KeyCacheStats:      "Cached",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "YT Браузер",
		KeyBack:            "Назад",
		KeyHome:            "Домой",
		KeyGo:              "Перейти",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyEnterURL:        "Введите URL YouTube или поисковый запрос",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyInvalidURL:      "Неверный URL",
		KeyPleaseEnterURL:  "Пожалуйста, введите URL или запрос",
		KeyLoading:         "Загрузка...",
		KeyLoadFailed:      "Не удалось загрузить",
		KeyMaxAliveViews:   "Макс. открытых видов",
		KeyProxyMode:       "Режим прокси",
		KeyProxyCustomURL:  "URL прокси",
		KeyProxyFallback:   "Использовать системный прокси",
		KeyTheme:           "Тема",
		KeyDownloadDir:     "Папка загрузки",
		KeyLogSessionsKeep: "Хранить сессий логов",
		KeyClearCaches:     "Очистить кэш",
		KeyCachesCleared:   "Кэш очищен",
		KeyHomeWelcome:     "Добро пожаловать в YT Браузер",
		KeyHomeHint:        "Вставьте ссылку на видео, плейлист или канал выше",
		KeySearchResults:   "Результаты поиска",
		KeyChannelUploads:  "Видео канала",
		KeyInstallingDeps:  "Установка зависимостей...",
		KeyDepsMissing:     "Необходимые инструменты не найдены",
		KeyInstall:         "Установить",
		KeyToastPosition:   "Положение уведомлений",
		KeyCacheStats:      "В кэше",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "YT Browser",
		KeyBack:            "Voltar",
		KeyHome:            "Início",
		KeyGo:              "Ir",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Navegar",
		KeyEnterURL:        "Digite uma URL do YouTube ou pesquisa",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyInvalidURL:      "URL inválida",
		KeyPleaseEnterURL:  "Por favor, digite uma URL ou pesquisa",
		KeyLoading:         "Carregando...",
		KeyLoadFailed:      "Falha ao carregar",
		KeyMaxAliveViews:   "Máx. de Vistas Montadas",
		KeyProxyMode:       "Modo de Proxy",
		KeyProxyCustomURL:  "URL do Proxy",
		KeyProxyFallback:   "Usar proxy do sistema",
		KeyTheme:           "Tema",
		KeyDownloadDir:     "Diretório de Download",
		KeyLogSessionsKeep: "Sessões de Log a Manter",
		KeyClearCaches:     "Limpar Caches",
		KeyCachesCleared:   "Caches limpos",
		KeyHomeWelcome:     "Bem-vindo ao YT Browser",
		KeyHomeHint:        "Cole uma URL de vídeo, playlist ou canal acima",
		KeySearchResults:   "Resultados da pesquisa",
		KeyChannelUploads:  "Vídeos do canal",
		KeyInstallingDeps:  "Instalando dependências...",
		KeyDepsMissing:     "Ferramentas necessárias ausentes",
		KeyInstall:         "Instalar",
		KeyToastPosition:   "Posição das Notificações",
		KeyCacheStats:      "Em cache",
	}
}
