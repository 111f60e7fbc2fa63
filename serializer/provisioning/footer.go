package provisioning

import (
	"reflect"

	"pnp-mapper/mapper"
	"pnp-mapper/model"
	"pnp-mapper/serializer"
)

const footerField = "Footer"

// footerSerializer maps the site footer and its nested links. Child links
// are FooterLinks in the domain model and FooterLink in the document.
type footerSerializer struct{}

func (footerSerializer) Deserialize(sc serializer.Scope, persistence any, template *model.ProvisioningTemplate) error {
	source := child(persistence, footerField)
	if source == nil {
		return nil
	}

	if template.Footer == nil {
		template.Footer = model.NewSiteFooter()
	}

	set, err := mapper.NewSet(
		mapper.On(func(l *model.SiteFooterLink) any { return &l.FooterLinks },
			collectionOf("FooterLink", reflect.TypeFor[model.SiteFooterLink](), true)),
	)
	if err != nil {
		return err
	}

	return sc.Context(set, footerField).Properties(source, template.Footer)
}

func (footerSerializer) Serialize(sc serializer.Scope, template *model.ProvisioningTemplate, persistence any) error {
	if template.Footer == nil {
		return nil
	}

	link, err := sc.Lookup("FooterLink")
	if err != nil {
		return err
	}

	bindings, err := schemaBindings(sc, "FooterLink", map[string]mapper.Resolver{
		"FooterLink": collectionOf("FooterLinks", link, false),
	})
	if err != nil {
		return err
	}

	set, err := mapper.NewSet(bindings...)
	if err != nil {
		return err
	}

	target, err := sc.Types.New(footerField)
	if err != nil {
		return err
	}

	if err := sc.Context(set, footerField).Properties(template.Footer, target); err != nil {
		return err
	}

	return setChild(persistence, footerField, target)
}
