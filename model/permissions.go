package model

import (
	"fmt"
	"strings"
)

// PermissionKind is one right of a BasePermissions mask.
type PermissionKind int

const (
	PermissionEmptyMask                     PermissionKind = 0
	PermissionViewListItems                 PermissionKind = 1
	PermissionAddListItems                  PermissionKind = 2
	PermissionEditListItems                 PermissionKind = 3
	PermissionDeleteListItems               PermissionKind = 4
	PermissionApproveItems                  PermissionKind = 5
	PermissionOpenItems                     PermissionKind = 6
	PermissionViewVersions                  PermissionKind = 7
	PermissionDeleteVersions                PermissionKind = 8
	PermissionCancelCheckout                PermissionKind = 9
	PermissionManagePersonalViews           PermissionKind = 10
	PermissionManageLists                   PermissionKind = 12
	PermissionViewFormPages                 PermissionKind = 13
	PermissionAnonymousSearchAccessList     PermissionKind = 14
	PermissionOpen                          PermissionKind = 17
	PermissionViewPages                     PermissionKind = 18
	PermissionAddAndCustomizePages          PermissionKind = 19
	PermissionApplyThemeAndBorder           PermissionKind = 20
	PermissionApplyStyleSheets              PermissionKind = 21
	PermissionViewUsageData                 PermissionKind = 22
	PermissionCreateSSCSite                 PermissionKind = 23
	PermissionManageSubwebs                 PermissionKind = 24
	PermissionCreateGroups                  PermissionKind = 25
	PermissionManagePermissions             PermissionKind = 26
	PermissionBrowseDirectories             PermissionKind = 27
	PermissionBrowseUserInfo                PermissionKind = 28
	PermissionAddDelPrivateWebParts         PermissionKind = 29
	PermissionUpdatePersonalWebParts        PermissionKind = 30
	PermissionManageWeb                     PermissionKind = 31
	PermissionAnonymousSearchAccessWebLists PermissionKind = 32
	PermissionUseClientIntegration          PermissionKind = 37
	PermissionUseRemoteAPIs                 PermissionKind = 38
	PermissionManageAlerts                  PermissionKind = 39
	PermissionCreateAlerts                  PermissionKind = 40
	PermissionEditMyUserInfo                PermissionKind = 41
	PermissionEnumeratePermissions          PermissionKind = 63
	PermissionFullMask                      PermissionKind = 65
)

var permissionNames = []struct {
	kind PermissionKind
	name string
}{
	{PermissionEmptyMask, "EmptyMask"},
	{PermissionViewListItems, "ViewListItems"},
	{PermissionAddListItems, "AddListItems"},
	{PermissionEditListItems, "EditListItems"},
	{PermissionDeleteListItems, "DeleteListItems"},
	{PermissionApproveItems, "ApproveItems"},
	{PermissionOpenItems, "OpenItems"},
	{PermissionViewVersions, "ViewVersions"},
	{PermissionDeleteVersions, "DeleteVersions"},
	{PermissionCancelCheckout, "CancelCheckout"},
	{PermissionManagePersonalViews, "ManagePersonalViews"},
	{PermissionManageLists, "ManageLists"},
	{PermissionViewFormPages, "ViewFormPages"},
	{PermissionAnonymousSearchAccessList, "AnonymousSearchAccessList"},
	{PermissionOpen, "Open"},
	{PermissionViewPages, "ViewPages"},
	{PermissionAddAndCustomizePages, "AddAndCustomizePages"},
	{PermissionApplyThemeAndBorder, "ApplyThemeAndBorder"},
	{PermissionApplyStyleSheets, "ApplyStyleSheets"},
	{PermissionViewUsageData, "ViewUsageData"},
	{PermissionCreateSSCSite, "CreateSSCSite"},
	{PermissionManageSubwebs, "ManageSubwebs"},
	{PermissionCreateGroups, "CreateGroups"},
	{PermissionManagePermissions, "ManagePermissions"},
	{PermissionBrowseDirectories, "BrowseDirectories"},
	{PermissionBrowseUserInfo, "BrowseUserInfo"},
	{PermissionAddDelPrivateWebParts, "AddDelPrivateWebParts"},
	{PermissionUpdatePersonalWebParts, "UpdatePersonalWebParts"},
	{PermissionManageWeb, "ManageWeb"},
	{PermissionAnonymousSearchAccessWebLists, "AnonymousSearchAccessWebLists"},
	{PermissionUseClientIntegration, "UseClientIntegration"},
	{PermissionUseRemoteAPIs, "UseRemoteAPIs"},
	{PermissionManageAlerts, "ManageAlerts"},
	{PermissionCreateAlerts, "CreateAlerts"},
	{PermissionEditMyUserInfo, "EditMyUserInfo"},
	{PermissionEnumeratePermissions, "EnumeratePermissions"},
	{PermissionFullMask, "FullMask"},
}

// PermissionKinds returns every defined kind in declaration order.
func PermissionKinds() []PermissionKind {
	out := make([]PermissionKind, len(permissionNames))
	for i, p := range permissionNames {
		out[i] = p.kind
	}

	return out
}

func (k PermissionKind) String() string {
	for _, p := range permissionNames {
		if p.kind == k {
			return p.name
		}
	}

	return fmt.Sprintf("PermissionKind(%d)", int(k))
}

// ParsePermissionKind parses a kind name, ignoring case.
func ParsePermissionKind(s string) (PermissionKind, error) {
	s = strings.TrimSpace(s)
	for _, p := range permissionNames {
		if strings.EqualFold(p.name, s) {
			return p.kind, nil
		}
	}

	return 0, fmt.Errorf("unknown permission kind %q", s)
}

// BasePermissions is a 64-bit rights mask split in two halves.
type BasePermissions struct {
	Low  uint32
	High uint32
}

// Set grants k. FullMask grants everything, EmptyMask clears the mask.
func (b *BasePermissions) Set(k PermissionKind) {
	switch k {
	case PermissionFullMask:
		b.Low, b.High = 0xFFFFFFFF, 0x7FFFFFFF
		return
	case PermissionEmptyMask:
		b.Low, b.High = 0, 0
		return
	}

	bit := uint(k) - 1
	if bit < 32 {
		b.Low |= 1 << bit
	} else {
		b.High |= 1 << (bit - 32)
	}
}

// Clear revokes k.
func (b *BasePermissions) Clear(k PermissionKind) {
	switch k {
	case PermissionFullMask:
		b.Low, b.High = 0, 0
		return
	case PermissionEmptyMask:
		return
	}

	bit := uint(k) - 1
	if bit < 32 {
		b.Low &^= 1 << bit
	} else {
		b.High &^= 1 << (bit - 32)
	}
}

// Has reports whether k is granted. EmptyMask is always granted.
func (b BasePermissions) Has(k PermissionKind) bool {
	switch k {
	case PermissionEmptyMask:
		return true
	case PermissionFullMask:
		return b.High&0x7FFFFFFF == 0x7FFFFFFF && b.Low == 0xFFFFFFFF
	}

	bit := uint(k) - 1
	if bit < 32 {
		return b.Low&(1<<bit) != 0
	}

	return b.High&(1<<(bit-32)) != 0
}

// IsEmpty reports whether no right is granted.
func (b BasePermissions) IsEmpty() bool {
	return b.Low == 0 && b.High == 0
}
