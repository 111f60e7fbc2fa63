package model

// SiteFooter is the footer of a modern site.
type SiteFooter struct {
	Enabled             bool
	Logo                string
	Name                string
	RemoveExistingNodes bool
	FooterLinks         *Collection[SiteFooterLink]
}

// NewSiteFooter returns a footer with an empty link collection.
func NewSiteFooter() *SiteFooter {
	return &SiteFooter{FooterLinks: NewCollection[SiteFooterLink]()}
}

// SiteFooterLink is a footer menu entry; entries nest.
type SiteFooterLink struct {
	DisplayName string
	Url         string
	FooterLinks *Collection[SiteFooterLink]
}

// NewSiteFooterLink returns a link with an empty child collection.
func NewSiteFooterLink(displayName, url string) SiteFooterLink {
	return SiteFooterLink{
		DisplayName: displayName,
		Url:         url,
		FooterLinks: NewCollection[SiteFooterLink](),
	}
}
