// Package form holds the drafts behind the console's form screens. Drafts are
// values: every edit returns a new draft and leaves the receiver untouched.
package form

import (
	"estateadmin/console/internal/apiclient"
)

type LoginDraft struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (d LoginDraft) With(field, value string) LoginDraft {
	switch field {
	case "username":
		d.Username = value
	case "password":
		d.Password = value
	}
	return d
}

// Redacted keeps what a failed login re-renders with.
func (d LoginDraft) Redacted() LoginDraft {
	return LoginDraft{Username: d.Username}
}

type BuilderDraft struct {
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description" binding:"required"`
	ContactEmail string `form:"contactEmail" binding:"required"`
	PhoneNumber  string `form:"phoneNumber" binding:"required"`
}

func (d BuilderDraft) With(field, value string) BuilderDraft {
	switch field {
	case "name":
		d.Name = value
	case "description":
		d.Description = value
	case "contactEmail":
		d.ContactEmail = value
	case "phoneNumber":
		d.PhoneNumber = value
	}
	return d
}

func (d BuilderDraft) Input() apiclient.CreateBuilderInput {
	return apiclient.CreateBuilderInput{
		Name:         d.Name,
		Description:  d.Description,
		ContactEmail: d.ContactEmail,
		PhoneNumber:  d.PhoneNumber,
	}
}
