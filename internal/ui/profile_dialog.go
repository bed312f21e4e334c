package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/session"
)

// ProfileEditor is the part of the session store the profile dialog needs
type ProfileEditor interface {
	Current() (model.Identity, bool)
	UpdateProfile(model.ProfileUpdate) (model.Identity, error)
	ChangePassword(current, next, confirm string) error
}

// ProfileDialog edits the signed-in identity and optionally checks a password change
type ProfileDialog struct {
	editor       ProfileEditor
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onDone       func(message string)

	// UI components
	nameEntry           *widget.Entry
	phoneEntry          *widget.Entry
	specializationEntry *widget.Entry
	departmentEntry     *widget.Entry
	currentPassword     *widget.Entry
	newPassword         *widget.Entry
	confirmPassword     *widget.Entry
}

// NewProfileDialog creates a new profile dialog. onDone receives the
// localized confirmation to show after a successful save.
func NewProfileDialog(editor ProfileEditor, localization *Localization, window fyne.Window, onDone func(string)) *ProfileDialog {
	pd := &ProfileDialog{
		editor:       editor,
		localization: localization,
		window:       window,
		onDone:       onDone,
	}

	pd.createUI()
	return pd
}

// Show displays the profile dialog
func (pd *ProfileDialog) Show() {
	pd.loadCurrentProfile()
	pd.dialog.Show()
}

func (pd *ProfileDialog) createUI() {
	loc := pd.localization

	pd.nameEntry = widget.NewEntry()
	pd.phoneEntry = widget.NewEntry()
	pd.specializationEntry = widget.NewEntry()
	pd.departmentEntry = widget.NewEntry()
	pd.currentPassword = widget.NewPasswordEntry()
	pd.newPassword = widget.NewPasswordEntry()
	pd.confirmPassword = widget.NewPasswordEntry()

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(loc.GetText(KeyName), pd.nameEntry),
			widget.NewFormItem(loc.GetText(KeyPhone), pd.phoneEntry),
			widget.NewFormItem(loc.GetText(KeySpecialization), pd.specializationEntry),
			widget.NewFormItem(loc.GetText(KeyDepartment), pd.departmentEntry),
		),
		widget.NewSeparator(),
		widget.NewLabelWithStyle(loc.GetText(KeyChangePassword), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem(loc.GetText(KeyCurrentPassword), pd.currentPassword),
			widget.NewFormItem(loc.GetText(KeyNewPassword), pd.newPassword),
			widget.NewFormItem(loc.GetText(KeyConfirmPassword), pd.confirmPassword),
		),
	)

	pd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeyEditProfile),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		container.NewVScroll(form),
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(460, 480))
}

func (pd *ProfileDialog) loadCurrentProfile() {
	identity, _ := pd.editor.Current()
	pd.nameEntry.SetText(identity.Name)
	pd.phoneEntry.SetText(identity.Phone)
	pd.specializationEntry.SetText(identity.Specialization)
	pd.departmentEntry.SetText(identity.Department)
	pd.currentPassword.SetText("")
	pd.newPassword.SetText("")
	pd.confirmPassword.SetText("")
}

func (pd *ProfileDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	message, err := pd.apply()
	if err != nil {
		dialog.ShowError(errors.New(pd.errorText(err)), pd.window)
		return
	}
	if pd.onDone != nil {
		pd.onDone(message)
	}
}

// apply validates a password change when any password field is filled, then
// saves the profile fields. Nothing is saved if the password check fails.
func (pd *ProfileDialog) apply() (string, error) {
	message := pd.localization.GetText(KeyProfileSaved)
	if pd.currentPassword.Text != "" || pd.newPassword.Text != "" || pd.confirmPassword.Text != "" {
		if err := pd.editor.ChangePassword(pd.currentPassword.Text, pd.newPassword.Text, pd.confirmPassword.Text); err != nil {
			return "", err
		}
		message = pd.localization.GetText(KeyPasswordChanged)
	}

	name := pd.nameEntry.Text
	phone := pd.phoneEntry.Text
	specialization := pd.specializationEntry.Text
	department := pd.departmentEntry.Text
	if _, err := pd.editor.UpdateProfile(model.ProfileUpdate{
		Name:           &name,
		Phone:          &phone,
		Specialization: &specialization,
		Department:     &department,
	}); err != nil {
		return "", err
	}
	return message, nil
}

func (pd *ProfileDialog) errorText(err error) string {
	switch {
	case errors.Is(err, session.ErrPasswordPolicy):
		return pd.localization.GetText(KeyPasswordPolicy)
	case errors.Is(err, session.ErrInvalidCredentials):
		return pd.localization.GetText(KeyCurrentPasswordBad)
	default:
		return err.Error()
	}
}
