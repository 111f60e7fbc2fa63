package resolvers

import (
	"fmt"
	"strings"

	"pnp-mapper/mapper"
	"pnp-mapper/model"
)

// FromStringToBasePermissions parses a comma-separated list of permission
// kind names ("ViewListItems,AddListItems") into a BasePermissions mask.
func FromStringToBasePermissions() mapper.ValueResolver {
	return mapper.ValueFunc(func(_, _, current any) (any, error) {
		var perms model.BasePermissions

		text, _ := current.(string)
		if p, ok := current.(*string); ok && p != nil {
			text = *p
		}

		for _, name := range strings.Split(text, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}

			kind, err := model.ParsePermissionKind(name)
			if err != nil {
				return nil, fmt.Errorf("rights: %w", err)
			}

			perms.Set(kind)
		}

		return perms, nil
	})
}

// FromBasePermissionsToString renders a BasePermissions mask as a
// comma-separated list of the granted kinds. A full mask renders as
// "FullMask" and an empty one as "".
func FromBasePermissionsToString() mapper.ValueResolver {
	return mapper.ValueFunc(func(_, _, current any) (any, error) {
		var perms model.BasePermissions

		switch v := current.(type) {
		case model.BasePermissions:
			perms = v
		case *model.BasePermissions:
			if v != nil {
				perms = *v
			}
		case nil:
		default:
			return nil, fmt.Errorf("rights: cannot render %T as permissions", current)
		}

		if perms.Has(model.PermissionFullMask) {
			return model.PermissionFullMask.String(), nil
		}

		var names []string
		for _, kind := range model.PermissionKinds() {
			if kind == model.PermissionEmptyMask || kind == model.PermissionFullMask {
				continue
			}

			if perms.Has(kind) {
				names = append(names, kind.String())
			}
		}

		return strings.Join(names, ","), nil
	})
}
