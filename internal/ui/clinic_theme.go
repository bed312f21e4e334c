package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/clinic-dashboard/internal/config"
	"github.com/ytget/clinic-dashboard/internal/model"
)

// ClinicTheme is a compact theme pinned to the persisted light/dark mode,
// regardless of the variant the OS asks for.
type ClinicTheme struct {
	mode model.ThemeMode
}

// NewClinicTheme creates a theme for the given mode. Unknown modes render light.
func NewClinicTheme(mode model.ThemeMode) fyne.Theme {
	if !mode.IsValid() {
		mode = model.ThemeLight
	}
	return &ClinicTheme{mode: mode}
}

// ThemeApplier returns a config.ThemeApplier that installs ClinicTheme on app.
func ThemeApplier(app fyne.App) config.ThemeApplier {
	return func(mode model.ThemeMode) {
		app.Settings().SetTheme(NewClinicTheme(mode))
	}
}

// Mode reports the mode this theme renders.
func (t *ClinicTheme) Mode() model.ThemeMode {
	return t.mode
}

func (t *ClinicTheme) variant() fyne.ThemeVariant {
	if t.mode == model.ThemeDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors
func (t *ClinicTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.variant()
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 13, G: 148, B: 136, A: 255} // Teal
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 17, G: 24, B: 39, A: 255}
		}
		return color.RGBA{R: 248, G: 250, B: 252, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 243, G: 244, B: 246, A: 255}
		}
		return color.RGBA{R: 31, G: 41, B: 55, A: 255}
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 31, G: 41, B: 55, A: 255}
		}
		return color.White
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ClinicTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ClinicTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *ClinicTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
