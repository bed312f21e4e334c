package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/session"
)

// LoginView is the public sign-in screen
type LoginView struct {
	localization *Localization
	onSubmit     func(session.Credentials)

	EmailEntry    *widget.Entry
	PasswordEntry *widget.Entry
	SubmitButton  *widget.Button
	ErrorLabel    *widget.Label

	title    *widget.Label
	subtitle *widget.Label
	demo     *widget.Label
	card     *widget.Card
	root     fyne.CanvasObject
}

// NewLoginView builds the sign-in form. demoAccounts is shown as a hint when
// non-empty.
func NewLoginView(localization *Localization, demoAccounts []string, onSubmit func(session.Credentials)) *LoginView {
	v := &LoginView{localization: localization, onSubmit: onSubmit}

	v.EmailEntry = widget.NewEntry()
	v.PasswordEntry = widget.NewPasswordEntry()
	v.PasswordEntry.OnSubmitted = func(string) { v.submit() }
	v.EmailEntry.OnSubmitted = func(string) { v.submit() }

	v.SubmitButton = widget.NewButton("", v.submit)
	v.SubmitButton.Importance = widget.HighImportance

	v.ErrorLabel = widget.NewLabel("")
	v.ErrorLabel.Importance = widget.DangerImportance
	v.ErrorLabel.Wrapping = fyne.TextWrapWord
	v.ErrorLabel.Hide()

	v.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.subtitle = widget.NewLabel("")
	v.subtitle.Alignment = fyne.TextAlignCenter
	v.subtitle.Wrapping = fyne.TextWrapWord

	v.demo = widget.NewLabel(strings.Join(demoAccounts, "\n"))
	v.demo.Importance = widget.LowImportance
	if len(demoAccounts) == 0 {
		v.demo.Hide()
	}

	form := container.NewVBox(
		v.title,
		v.subtitle,
		widget.NewSeparator(),
		v.EmailEntry,
		v.PasswordEntry,
		v.ErrorLabel,
		v.SubmitButton,
		v.demo,
	)
	v.card = widget.NewCard("", "", form)

	sized := container.New(layout.NewGridWrapLayout(fyne.NewSize(LoginCardWidth, form.MinSize().Height+MinTouchTargetSize)), v.card)
	v.root = container.NewCenter(container.NewVScroll(sized))

	v.Update(session.Snapshot{})
	return v
}

// Object returns the canvas object to place in the window
func (v *LoginView) Object() fyne.CanvasObject {
	return v.root
}

// Update projects the session snapshot: the submit button is disabled while a
// login is pending and the last failure is shown under the form.
func (v *LoginView) Update(snap session.Snapshot) {
	loc := v.localization
	v.title.SetText(loc.GetText(KeySignInTitle))
	v.subtitle.SetText(loc.GetText(KeySignInSubtitle))
	v.EmailEntry.SetPlaceHolder(loc.GetText(KeyEmail))
	v.PasswordEntry.SetPlaceHolder(loc.GetText(KeyPassword))
	v.card.SetTitle(loc.GetText(KeyAppTitle))
	if v.demo.Text != "" {
		v.card.SetSubTitle(loc.GetText(KeyDemoAccounts))
	}

	if snap.State == session.StateAuthenticating {
		v.SubmitButton.SetText(loc.GetText(KeySigningIn))
		v.SubmitButton.Disable()
	} else {
		v.SubmitButton.SetText(loc.GetText(KeySignIn))
		v.SubmitButton.Enable()
	}

	switch {
	case snap.Err == nil:
		v.ErrorLabel.Hide()
	case errors.Is(snap.Err, session.ErrInvalidCredentials):
		v.ErrorLabel.SetText(loc.GetText(KeyInvalidCredentials))
		v.ErrorLabel.Show()
	default:
		v.ErrorLabel.SetText(snap.Err.Error())
		v.ErrorLabel.Show()
	}
}

// Failed clears the password after a rejected attempt
func (v *LoginView) Failed() {
	v.PasswordEntry.SetText("")
}

func (v *LoginView) submit() {
	if v.SubmitButton.Disabled() || v.onSubmit == nil {
		return
	}
	v.SubmitButton.Disable()
	v.onSubmit(session.Credentials{
		Email:    v.EmailEntry.Text,
		Password: v.PasswordEntry.Text,
	})
}
