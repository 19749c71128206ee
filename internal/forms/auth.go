package forms

import "strings"

var authMessages = map[string]string{
	"Name.required_if": "Name is required",
	"Email.required":   "Email is required",
	"Email.email":      "Enter a valid email address",
}

// AuthForm backs both tabs of the sign-in screen. Password is collected for
// the look of the form and never read.
type AuthForm struct {
	Register bool
	Name     string `validate:"required_if=Register true"`
	Email    string `validate:"required,email"`
	Password string
}

func (f AuthForm) trimmed() AuthForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

func (f AuthForm) Validate() Errors {
	return check(f.trimmed(), authMessages)
}

// Credentials returns the trimmed name and email.
func (f AuthForm) Credentials() (name, email string) {
	f = f.trimmed()
	return f.Name, f.Email
}

// SwitchTab changes between the sign-in and register tabs, keeping the
// typed email.
func (f *AuthForm) SwitchTab(register bool) {
	f.Register = register
	f.Password = ""
}
