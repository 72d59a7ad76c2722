package i18n

import "golang.org/x/text/language"

var english = &Table{
	Tag:  language.English,
	Name: "English",
	messages: map[MessageID]string{
		MsgMenuApp:              "Messenger",
		MsgMenuView:             "View",
		MsgMenuEdit:             "Edit",
		MsgMenuSettings:         "Settings",
		MsgMenuLanguage:         "Language",
		MsgReload:               "Reload",
		MsgSelectAll:            "Select All",
		MsgNotifications:        "Show Notifications",
		MsgAutoUpdate:           "Check for Updates Automatically",
		MsgCheckUpdates:         "Check for Updates…",
		MsgAbout:                "About",
		MsgQuit:                 "Quit",
		MsgLanguageAuto:         "System Default",
		MsgUpdateAvailableTitle: "Update available",
		MsgUpdateAvailableBody:  "Version %s is available. You are running %s.",
		MsgUpdateDownload:       "Download",
		MsgUpdateLater:          "Later",
		MsgUpdateUpToDate:       "You are running the latest version (%s).",
		MsgUpdateFailedTitle:    "Update check failed",
		MsgDismiss:              "Dismiss",
		MsgNewMessage:           "New message",
		MsgLoadFailedTitle:      "Messenger could not be loaded",
	},
}

var french = &Table{
	Tag:  language.French,
	Name: "Français",
	messages: map[MessageID]string{
		MsgMenuApp:              "Messenger",
		MsgMenuView:             "Affichage",
		MsgMenuEdit:             "Édition",
		MsgMenuSettings:         "Paramètres",
		MsgMenuLanguage:         "Langue",
		MsgReload:               "Recharger",
		MsgSelectAll:            "Tout sélectionner",
		MsgNotifications:        "Afficher les notifications",
		MsgAutoUpdate:           "Rechercher les mises à jour automatiquement",
		MsgCheckUpdates:         "Rechercher des mises à jour…",
		MsgAbout:                "À propos",
		MsgQuit:                 "Quitter",
		MsgLanguageAuto:         "Langue du système",
		MsgUpdateAvailableTitle: "Mise à jour disponible",
		MsgUpdateAvailableBody:  "La version %s est disponible. Vous utilisez la version %s.",
		MsgUpdateDownload:       "Télécharger",
		MsgUpdateLater:          "Plus tard",
		MsgUpdateUpToDate:       "Vous utilisez la dernière version (%s).",
		MsgUpdateFailedTitle:    "Échec de la recherche de mises à jour",
		MsgDismiss:              "Fermer",
		MsgNewMessage:           "Nouveau message",
		MsgLoadFailedTitle:      "Impossible de charger Messenger",
	},
}

var german = &Table{
	Tag:  language.German,
	Name: "Deutsch",
	messages: map[MessageID]string{
		MsgMenuView:             "Ansicht",
		MsgMenuEdit:             "Bearbeiten",
		MsgMenuSettings:         "Einstellungen",
		MsgMenuLanguage:         "Sprache",
		MsgReload:               "Neu laden",
		MsgSelectAll:            "Alles auswählen",
		MsgNotifications:        "Benachrichtigungen anzeigen",
		MsgAutoUpdate:           "Automatisch nach Updates suchen",
		MsgCheckUpdates:         "Nach Updates suchen…",
		MsgAbout:                "Über",
		MsgQuit:                 "Beenden",
		MsgLanguageAuto:         "Systemsprache",
		MsgUpdateAvailableTitle: "Update verfügbar",
		MsgUpdateAvailableBody:  "Version %s ist verfügbar. Installiert ist %s.",
		MsgUpdateDownload:       "Herunterladen",
		MsgUpdateLater:          "Später",
		MsgUpdateUpToDate:       "Sie verwenden die neueste Version (%s).",
		MsgUpdateFailedTitle:    "Update-Prüfung fehlgeschlagen",
		MsgDismiss:              "Schließen",
		MsgNewMessage:           "Neue Nachricht",
		MsgLoadFailedTitle:      "Messenger konnte nicht geladen werden",
	},
}

var spanish = &Table{
	Tag:  language.Spanish,
	Name: "Español",
	messages: map[MessageID]string{
		MsgMenuView:             "Ver",
		MsgMenuEdit:             "Editar",
		MsgMenuSettings:         "Ajustes",
		MsgMenuLanguage:         "Idioma",
		MsgReload:               "Recargar",
		MsgSelectAll:            "Seleccionar todo",
		MsgNotifications:        "Mostrar notificaciones",
		MsgAutoUpdate:           "Buscar actualizaciones automáticamente",
		MsgCheckUpdates:         "Buscar actualizaciones…",
		MsgAbout:                "Acerca de",
		MsgQuit:                 "Salir",
		MsgLanguageAuto:         "Idioma del sistema",
		MsgUpdateAvailableTitle: "Actualización disponible",
		MsgUpdateAvailableBody:  "La versión %s está disponible. Está usando la %s.",
		MsgUpdateDownload:       "Descargar",
		MsgUpdateLater:          "Más tarde",
		MsgUpdateUpToDate:       "Está usando la última versión (%s).",
		MsgUpdateFailedTitle:    "Error al buscar actualizaciones",
		MsgDismiss:              "Cerrar",
		MsgNewMessage:           "Mensaje nuevo",
		MsgLoadFailedTitle:      "No se pudo cargar Messenger",
	},
}

var brazilianPortuguese = &Table{
	Tag:  language.BrazilianPortuguese,
	Name: "Português (Brasil)",
	messages: map[MessageID]string{
		MsgMenuView:             "Exibir",
		MsgMenuEdit:             "Editar",
		MsgMenuSettings:         "Configurações",
		MsgMenuLanguage:         "Idioma",
		MsgReload:               "Recarregar",
		MsgSelectAll:            "Selecionar tudo",
		MsgNotifications:        "Mostrar notificações",
		MsgAutoUpdate:           "Verificar atualizações automaticamente",
		MsgCheckUpdates:         "Verificar atualizações…",
		MsgAbout:                "Sobre",
		MsgQuit:                 "Sair",
		MsgLanguageAuto:         "Idioma do sistema",
		MsgUpdateAvailableTitle: "Atualização disponível",
		MsgUpdateAvailableBody:  "A versão %s está disponível. Você está usando a %s.",
		MsgUpdateDownload:       "Baixar",
		MsgUpdateLater:          "Depois",
		MsgUpdateUpToDate:       "Você está usando a versão mais recente (%s).",
		MsgUpdateFailedTitle:    "Falha ao verificar atualizações",
		MsgDismiss:              "Fechar",
		MsgNewMessage:           "Nova mensagem",
		MsgLoadFailedTitle:      "Não foi possível carregar o Messenger",
	},
}

// tables is ordered; the first entry is the matcher's fallback.
var tables = []*Table{english, french, german, spanish, brazilianPortuguese}
