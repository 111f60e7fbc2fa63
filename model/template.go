package model

// ProvisioningTemplate is the root of the domain model.
type ProvisioningTemplate struct {
	ID               string
	Version          float64
	BaseSiteTemplate string
	ImagePreviewUrl  string
	DisplayName      string
	Description      string

	CustomActions *CustomActions
	Footer        *SiteFooter
}

// NewProvisioningTemplate returns an empty template whose custom action
// collections exist. Footer stays nil until a footer is mapped.
func NewProvisioningTemplate() *ProvisioningTemplate {
	return &ProvisioningTemplate{
		CustomActions: NewCustomActions(),
	}
}
