package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/clinic-dashboard/internal/model"
)

func TestClinicTheme_IgnoresRequestedVariant(t *testing.T) {
	dark := NewClinicTheme(model.ThemeDark)
	light := NewClinicTheme(model.ThemeLight)

	if dark.Color(theme.ColorNameBackground, theme.VariantLight) != dark.Color(theme.ColorNameBackground, theme.VariantDark) {
		t.Error("dark theme background depends on the requested variant")
	}
	if dark.Color(theme.ColorNameBackground, theme.VariantLight) == light.Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("dark and light backgrounds are equal")
	}
}

func TestClinicTheme_InvalidModeRendersLight(t *testing.T) {
	th := NewClinicTheme(model.ThemeMode("sepia")).(*ClinicTheme)
	if th.Mode() != model.ThemeLight {
		t.Errorf("mode = %q, want light", th.Mode())
	}
}

func TestThemeApplier_SetsAppTheme(t *testing.T) {
	app := test.NewApp()

	ThemeApplier(app)(model.ThemeDark)
	th, ok := app.Settings().Theme().(*ClinicTheme)
	if !ok {
		t.Fatalf("theme = %T, want *ClinicTheme", app.Settings().Theme())
	}
	if th.Mode() != model.ThemeDark {
		t.Errorf("mode = %q, want dark", th.Mode())
	}
}
