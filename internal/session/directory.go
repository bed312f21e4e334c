package session

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/clinic-dashboard/internal/model"
)

//go:embed directory.yaml
var defaultDirectory []byte

// Account is a directory entry: an identity plus its secret.
type Account struct {
	ID             string     `yaml:"id"`
	Name           string     `yaml:"name"`
	Email          string     `yaml:"email"`
	Password       string     `yaml:"password"`
	Role           model.Role `yaml:"role"`
	Phone          string     `yaml:"phone"`
	Specialization string     `yaml:"specialization"`
	Department     string     `yaml:"department"`
}

// Identity returns the account without its secret.
func (a Account) Identity() model.Identity {
	return model.Identity{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		Phone:          a.Phone,
		Specialization: a.Specialization,
		Department:     a.Department,
	}
}

type directoryFile struct {
	Accounts []Account `yaml:"accounts"`
}

// Directory is the closed, read-only list of known accounts.
type Directory struct {
	accounts []Account
	byEmail  map[string]int
}

// DefaultDirectory returns the embedded demo directory.
func DefaultDirectory() *Directory {
	dir, err := ParseDirectory(defaultDirectory)
	if err != nil {
		panic(fmt.Sprintf("embedded directory is invalid: %v", err))
	}
	return dir
}

// LoadDirectory reads a YAML directory file. An empty path yields the default directory.
func LoadDirectory(path string) (*Directory, error) {
	if path == "" {
		return DefaultDirectory(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	dir, err := ParseDirectory(data)
	if err != nil {
		return nil, fmt.Errorf("parse directory %s: %w", path, err)
	}
	return dir, nil
}

// ParseDirectory decodes YAML and validates every account.
func ParseDirectory(data []byte) (*Directory, error) {
	var file directoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode directory: %w", err)
	}
	return NewDirectory(file.Accounts...)
}

// NewDirectory builds a directory, rejecting invalid identities and duplicate emails.
func NewDirectory(accounts ...Account) (*Directory, error) {
	d := &Directory{
		accounts: make([]Account, 0, len(accounts)),
		byEmail:  make(map[string]int, len(accounts)),
	}
	folded := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		if err := a.Identity().Validate(); err != nil {
			return nil, err
		}
		if a.Password == "" {
			return nil, fmt.Errorf("account %s has no password", a.Email)
		}
		key := foldEmail(a.Email)
		if _, dup := folded[key]; dup {
			return nil, fmt.Errorf("duplicate account email: %s", a.Email)
		}
		folded[key] = struct{}{}
		d.byEmail[a.Email] = len(d.accounts)
		d.accounts = append(d.accounts, a)
	}
	return d, nil
}

// Authenticate returns the identity whose email and password both match
// byte for byte. Emails are neither trimmed nor case-folded.
func (d *Directory) Authenticate(email, password string) (model.Identity, bool) {
	idx, ok := d.byEmail[email]
	if !ok {
		return model.Identity{}, false
	}
	account := d.accounts[idx]
	if account.Password != password {
		return model.Identity{}, false
	}
	return account.Identity(), true
}

// Lookup finds an account by its exact email.
func (d *Directory) Lookup(email string) (Account, bool) {
	idx, ok := d.byEmail[email]
	if !ok {
		return Account{}, false
	}
	return d.accounts[idx], true
}

// Accounts lists every identity, without secrets.
func (d *Directory) Accounts() []model.Identity {
	out := make([]model.Identity, 0, len(d.accounts))
	for _, a := range d.accounts {
		out = append(out, a.Identity())
	}
	return out
}

// foldEmail is the key under which two addresses count as the same account.
func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
