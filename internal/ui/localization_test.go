package ui

import (
	"testing"
)

func envWith(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLocalization_FallsBackToEnglishThenKey(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	if got := l.GetText(KeyLogout); got != "Выйти" {
		t.Fatalf("ru logout = %q", got)
	}

	delete(l.texts["ru"], KeyLogout)
	if got := l.GetText(KeyLogout); got != "Log out" {
		t.Fatalf("fallback to English = %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Fatalf("fallback to key = %q", got)
	}
}

func TestLocalization_UnknownLanguageKeepsCurrent(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")
	l.SetLanguage("de")
	if got := l.GetCurrentLanguage(); got != "pt" {
		t.Fatalf("language = %q, want pt", got)
	}
}

func TestLocalization_SystemLanguage(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"portuguese locale", map[string]string{"LANG": "pt_BR.UTF-8"}, "pt"},
		{"russian locale", map[string]string{"LANG": "ru_RU.UTF-8"}, "ru"},
		{"LC_ALL wins", map[string]string{"LC_ALL": "ru_RU", "LANG": "pt_PT"}, "ru"},
		{"unsupported locale", map[string]string{"LANG": "ja_JP.UTF-8"}, "en"},
		{"C locale", map[string]string{"LANG": "C"}, "en"},
		{"nothing set", map[string]string{}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.lookupEnv = envWith(tt.env)
			l.SetLanguage(LanguageSystem)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("language = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalization_EveryLanguageHasEveryKey(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		for _, code := range l.LanguageCodes() {
			if _, ok := l.texts[code][key]; !ok {
				t.Errorf("language %s is missing %s", code, key)
			}
		}
	}
}

func TestLocalization_LanguageCodesSorted(t *testing.T) {
	codes := NewLocalization().LanguageCodes()
	want := []string{"en", "pt", "ru"}
	if len(codes) != len(want) {
		t.Fatalf("codes = %v", codes)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("codes = %v, want %v", codes, want)
		}
	}
}
