package ui

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	matcher         language.Matcher
	lookupEnv       func(string) string
}

// LanguageSystem asks Localization to follow the OS locale.
const LanguageSystem = "system"

var supportedLanguages = []language.Tag{
	language.English,
	language.Portuguese,
	language.Russian,
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeySignInTitle         = "sign_in_title"
	KeySignInSubtitle      = "sign_in_subtitle"
	KeyEmail               = "email"
	KeyPassword            = "password"
	KeySignIn              = "sign_in"
	KeySigningIn           = "signing_in"
	KeyInvalidCredentials  = "invalid_credentials"
	KeyDemoAccounts        = "demo_accounts"
	KeyLogout              = "logout"
	KeyProfile             = "profile"
	KeyEditProfile         = "edit_profile"
	KeyLanguage            = "language"
	KeyNotifications       = "notifications"
	KeyMarkAllRead         = "mark_all_read"
	KeyNoNotifications     = "no_notifications"
	KeyDarkMode            = "dark_mode"
	KeyLightMode           = "light_mode"
	KeyNavDashboard        = "nav_dashboard"
	KeyNavPatients         = "nav_patients"
	KeyNavSessions         = "nav_sessions"
	KeyNavPayments         = "nav_payments"
	KeyNavReports          = "nav_reports"
	KeyNavStaff            = "nav_staff"
	KeyNavSettings         = "nav_settings"
	KeyWelcome             = "welcome"
	KeySectionIntro        = "section_intro"
	KeyRoleAdministrator   = "role_administrator"
	KeyRoleClinician       = "role_clinician"
	KeyRoleFrontDesk       = "role_front_desk"
	KeyName                = "name"
	KeyPhone               = "phone"
	KeySpecialization      = "specialization"
	KeyDepartment          = "department"
	KeyCurrentPassword     = "current_password"
	KeyNewPassword         = "new_password"
	KeyConfirmPassword     = "confirm_password"
	KeyChangePassword      = "change_password"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeyProfileSaved        = "profile_saved"
	KeyPasswordChanged     = "password_changed"
	KeyPasswordPolicy      = "password_policy"
	KeyCurrentPasswordBad  = "current_password_bad"
	KeyPermissionsHeading  = "permissions_heading"
	KeyNoPermissionSection = "no_permission_section"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		matcher:         language.NewMatcher(supportedLanguages),
		lookupEnv:       os.Getenv,
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves the OS locale
// (LC_ALL, LC_MESSAGES, LANG) against the supported languages.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = l.systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

func (l *Localization) systemLanguage() string {
	var tags []language.Tag
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := parseLocale(l.lookupEnv(name)); ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return "en"
	}

	_, index, confidence := l.matcher.Match(tags...)
	if confidence == language.No {
		return "en"
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// parseLocale turns a POSIX locale such as "pt_BR.UTF-8" into a language tag.
func parseLocale(value string) (language.Tag, bool) {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
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

// LanguageCodes returns the available language codes in a stable order.
func (l *Localization) LanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Clinic Dashboard",
		KeySignInTitle:         "Welcome back",
		KeySignInSubtitle:      "Sign in to manage patients, sessions and payments",
		KeyEmail:               "Email",
		KeyPassword:            "Password",
		KeySignIn:              "Sign in",
		KeySigningIn:           "Signing in...",
		KeyInvalidCredentials:  "Invalid email or password",
		KeyDemoAccounts:        "Demo accounts",
		KeyLogout:              "Log out",
		KeyProfile:             "Profile",
		KeyEditProfile:         "Edit profile",
		KeyLanguage:            "Language",
		KeyNotifications:       "Notifications",
		KeyMarkAllRead:         "Mark all as read",
		KeyNoNotifications:     "You're all caught up",
		KeyDarkMode:            "Dark mode",
		KeyLightMode:           "Light mode",
		KeyNavDashboard:        "Dashboard",
		KeyNavPatients:         "Patients",
		KeyNavSessions:         "Sessions",
		KeyNavPayments:         "Payments",
		KeyNavReports:          "Reports",
		KeyNavStaff:            "Staff",
		KeyNavSettings:         "Settings",
		KeyWelcome:             "Hello, %s",
		KeySectionIntro:        "Overview of %s for your clinic.",
		KeyRoleAdministrator:   "Administrator",
		KeyRoleClinician:       "Clinician",
		KeyRoleFrontDesk:       "Front desk",
		KeyName:                "Name",
		KeyPhone:               "Phone",
		KeySpecialization:      "Specialization",
		KeyDepartment:          "Department",
		KeyCurrentPassword:     "Current password",
		KeyNewPassword:         "New password",
		KeyConfirmPassword:     "Confirm new password",
		KeyChangePassword:      "Change password",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeyProfileSaved:        "Profile updated",
		KeyPasswordChanged:     "Password changed",
		KeyPasswordPolicy:      "Password must have at least 8 characters, letters and digits, and match the confirmation",
		KeyCurrentPasswordBad:  "Current password is incorrect",
		KeyPermissionsHeading:  "Your permissions",
		KeyNoPermissionSection: "You don't have access to this section",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Панель клиники",
		KeySignInTitle:         "С возвращением",
		KeySignInSubtitle:      "Войдите, чтобы работать с пациентами, сеансами и платежами",
		KeyEmail:               "Эл. почта",
		KeyPassword:            "Пароль",
		KeySignIn:              "Войти",
		KeySigningIn:           "Вход...",
		KeyInvalidCredentials:  "Неверная почта или пароль",
		KeyDemoAccounts:        "Демо-аккаунты",
		KeyLogout:              "Выйти",
		KeyProfile:             "Профиль",
		KeyEditProfile:         "Редактировать профиль",
		KeyLanguage:            "Язык",
		KeyNotifications:       "Уведомления",
		KeyMarkAllRead:         "Отметить все как прочитанные",
		KeyNoNotifications:     "Новых уведомлений нет",
		KeyDarkMode:            "Тёмная тема",
		KeyLightMode:           "Светлая тема",
		KeyNavDashboard:        "Обзор",
		KeyNavPatients:         "Пациенты",
		KeyNavSessions:         "Сеансы",
		KeyNavPayments:         "Платежи",
		KeyNavReports:          "Отчёты",
		KeyNavStaff:            "Сотрудники",
		KeyNavSettings:         "Настройки",
		KeyWelcome:             "Здравствуйте, %s",
		KeySectionIntro:        "Раздел «%s» вашей клиники.",
		KeyRoleAdministrator:   "Администратор",
		KeyRoleClinician:       "Специалист",
		KeyRoleFrontDesk:       "Регистратура",
		KeyName:                "Имя",
		KeyPhone:               "Телефон",
		KeySpecialization:      "Специализация",
		KeyDepartment:          "Отделение",
		KeyCurrentPassword:     "Текущий пароль",
		KeyNewPassword:         "Новый пароль",
		KeyConfirmPassword:     "Повторите пароль",
		KeyChangePassword:      "Сменить пароль",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeyProfileSaved:        "Профиль обновлён",
		KeyPasswordChanged:     "Пароль изменён",
		KeyPasswordPolicy:      "Пароль должен содержать не менее 8 символов, буквы и цифры и совпадать с подтверждением",
		KeyCurrentPasswordBad:  "Текущий пароль неверен",
		KeyPermissionsHeading:  "Ваши права",
		KeyNoPermissionSection: "У вас нет доступа к этому разделу",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Painel da Clínica",
		KeySignInTitle:         "Bem-vindo de volta",
		KeySignInSubtitle:      "Entre para gerenciar pacientes, sessões e pagamentos",
		KeyEmail:               "E-mail",
		KeyPassword:            "Senha",
		KeySignIn:              "Entrar",
		KeySigningIn:           "Entrando...",
		KeyInvalidCredentials:  "E-mail ou senha inválidos",
		KeyDemoAccounts:        "Contas de demonstração",
		KeyLogout:              "Sair",
		KeyProfile:             "Perfil",
		KeyEditProfile:         "Editar perfil",
		KeyLanguage:            "Idioma",
		KeyNotifications:       "Notificações",
		KeyMarkAllRead:         "Marcar todas como lidas",
		KeyNoNotifications:     "Nenhuma notificação nova",
		KeyDarkMode:            "Modo escuro",
		KeyLightMode:           "Modo claro",
		KeyNavDashboard:        "Painel",
		KeyNavPatients:         "Pacientes",
		KeyNavSessions:         "Sessões",
		KeyNavPayments:         "Pagamentos",
		KeyNavReports:          "Relatórios",
		KeyNavStaff:            "Equipe",
		KeyNavSettings:         "Configurações",
		KeyWelcome:             "Olá, %s",
		KeySectionIntro:        "Visão geral de %s da sua clínica.",
		KeyRoleAdministrator:   "Administrador",
		KeyRoleClinician:       "Profissional de saúde",
		KeyRoleFrontDesk:       "Recepção",
		KeyName:                "Nome",
		KeyPhone:               "Telefone",
		KeySpecialization:      "Especialização",
		KeyDepartment:          "Departamento",
		KeyCurrentPassword:     "Senha atual",
		KeyNewPassword:         "Nova senha",
		KeyConfirmPassword:     "Confirme a nova senha",
		KeyChangePassword:      "Alterar senha",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeyProfileSaved:        "Perfil atualizado",
		KeyPasswordChanged:     "Senha alterada",
		KeyPasswordPolicy:      "A senha deve ter pelo menos 8 caracteres, letras e números, e coincidir com a confirmação",
		KeyCurrentPasswordBad:  "A senha atual está incorreta",
		KeyPermissionsHeading:  "Suas permissões",
		KeyNoPermissionSection: "Você não tem acesso a esta seção",
	}
}
