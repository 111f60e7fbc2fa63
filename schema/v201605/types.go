// Package v201605 is the 2016-05 provisioning document schema.
package v201605

import "pnp-mapper/schema"

// Version is the schema version of this package.
const Version = schema.V201605

// Types returns the type table of this version.
func Types() *schema.TypeTable {
	return schema.NewTypeTable(Version,
		ProvisioningTemplate{},
		CustomActions{},
		CustomAction{},
		CustomActionCommandUIExtension{},
		RegistrationType(""),
	)
}

type ProvisioningTemplate struct {
	ID               string         `json:"id" yaml:"id"`
	Version          float64        `json:"version,omitempty" yaml:"version,omitempty"`
	VersionSpecified bool           `json:"-" yaml:"-"`
	BaseSiteTemplate string         `json:"baseSiteTemplate,omitempty" yaml:"baseSiteTemplate,omitempty"`
	ImagePreviewUrl  string         `json:"imagePreviewUrl,omitempty" yaml:"imagePreviewUrl,omitempty"`
	DisplayName      string         `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description      string         `json:"description,omitempty" yaml:"description,omitempty"`
	CustomActions    *CustomActions `json:"customActions,omitempty" yaml:"customActions,omitempty"`
}

type CustomActions struct {
	SiteCustomActions []CustomAction `json:"siteCustomActions,omitempty" yaml:"siteCustomActions,omitempty"`
	WebCustomActions  []CustomAction `json:"webCustomActions,omitempty" yaml:"webCustomActions,omitempty"`
}

type CustomAction struct {
	Name                      string                          `json:"name" yaml:"name"`
	Description               string                          `json:"description,omitempty" yaml:"description,omitempty"`
	Group                     string                          `json:"group,omitempty" yaml:"group,omitempty"`
	Location                  string                          `json:"location" yaml:"location"`
	Title                     string                          `json:"title,omitempty" yaml:"title,omitempty"`
	Sequence                  int                             `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	SequenceSpecified         bool                            `json:"-" yaml:"-"`
	Rights                    string                          `json:"rights,omitempty" yaml:"rights,omitempty"`
	Url                       string                          `json:"url,omitempty" yaml:"url,omitempty"`
	Enabled                   bool                            `json:"enabled" yaml:"enabled"`
	ScriptBlock               string                          `json:"scriptBlock,omitempty" yaml:"scriptBlock,omitempty"`
	ImageUrl                  string                          `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	ScriptSrc                 string                          `json:"scriptSrc,omitempty" yaml:"scriptSrc,omitempty"`
	RegistrationId            string                          `json:"registrationId,omitempty" yaml:"registrationId,omitempty"`
	RegistrationType          RegistrationType                `json:"registrationType,omitempty" yaml:"registrationType,omitempty"`
	RegistrationTypeSpecified bool                            `json:"-" yaml:"-"`
	CommandUIExtension        *CustomActionCommandUIExtension `json:"commandUIExtension,omitempty" yaml:"commandUIExtension,omitempty"`
	Remove                    bool                            `json:"remove,omitempty" yaml:"remove,omitempty"`
}

// CustomActionCommandUIExtension carries free-form command UI nodes.
type CustomActionCommandUIExtension struct {
	Any []any `json:"any,omitempty" yaml:"any,omitempty"`
}

type RegistrationType string

const (
	RegistrationTypeNone        RegistrationType = "None"
	RegistrationTypeList        RegistrationType = "List"
	RegistrationTypeContentType RegistrationType = "ContentType"
	RegistrationTypeProgId      RegistrationType = "ProgId"
	RegistrationTypeFileType    RegistrationType = "FileType"
)
