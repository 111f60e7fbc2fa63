package model

import (
	"fmt"
	"strings"
)

// UserCustomActionRegistrationType tells what a custom action is attached to.
type UserCustomActionRegistrationType int

const (
	RegistrationNone UserCustomActionRegistrationType = iota
	RegistrationList
	RegistrationContentType
	RegistrationProgID
	RegistrationFileType
)

var registrationTypeNames = [...]string{"None", "List", "ContentType", "ProgId", "FileType"}

func (t UserCustomActionRegistrationType) String() string {
	if t < 0 || int(t) >= len(registrationTypeNames) {
		return fmt.Sprintf("UserCustomActionRegistrationType(%d)", int(t))
	}

	return registrationTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t UserCustomActionRegistrationType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(registrationTypeNames) {
		return nil, fmt.Errorf("invalid registration type %d", int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names compare case-insensitively.
func (t *UserCustomActionRegistrationType) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	for i, name := range registrationTypeNames {
		if strings.EqualFold(name, s) {
			*t = UserCustomActionRegistrationType(i)
			return nil
		}
	}

	return fmt.Errorf("unknown registration type %q", s)
}

// CustomActions groups the custom actions of a site collection and of a web.
type CustomActions struct {
	SiteCustomActions *Collection[CustomAction]
	WebCustomActions  *Collection[CustomAction]
}

// NewCustomActions returns CustomActions with empty collections.
func NewCustomActions() *CustomActions {
	return &CustomActions{
		SiteCustomActions: NewCollection[CustomAction](),
		WebCustomActions:  NewCollection[CustomAction](),
	}
}

// CustomAction is a user custom action (ribbon button, ECB entry, script link).
type CustomAction struct {
	Name                          string
	Description                   string
	Group                         string
	Location                      string
	Title                         string
	Sequence                      int
	Rights                        BasePermissions
	Url                           string
	Enabled                       bool
	ScriptBlock                   string
	ImageUrl                      string
	ScriptSrc                     string
	RegistrationId                string
	RegistrationType              UserCustomActionRegistrationType
	CommandUIExtension            string // serialized command UI markup
	Remove                        bool
	ClientSideComponentId         string
	ClientSideComponentProperties string
}
