package steamapi

import (
	"github.com/teknology-hub/tek-game-runtime/layout"
)

// LicenseResultHasLicense is the license-check result meaning the account
// owns the queried product.
const LicenseResultHasLicense int32 = 0

// installOverrides patches the baseline ownership and identity catalog into
// the installed descriptors. Every patch resolves through the slot map, so
// methods absent from the detected revision are skipped automatically.
func (r *Runtime) installOverrides() {
	s := r.settings

	if apps := r.descriptors[layout.KindApps]; apps != nil {
		apps.Patch(layout.AppsBIsSubscribed, func() bool { return true })

		subscribedOrig, _ := apps.Original(layout.AppsBIsSubscribedApp).(func(appID uint32) bool)
		apps.Patch(layout.AppsBIsSubscribedApp, func(appID uint32) bool {
			if appID == s.EffectiveAppID() || s.OwnsDLC(appID) {
				return true
			}
			if subscribedOrig != nil {
				return subscribedOrig(appID)
			}
			return false
		})

		apps.Patch(layout.AppsBIsDlcInstalled, func(appID uint32) bool {
			return s.DLCInstalled(appID)
		})
		apps.Patch(layout.AppsBIsSubscribedFromFreeWeekend, func() bool { return false })
		apps.Patch(layout.AppsGetDLCCount, func() int32 {
			return int32(s.DLCCount())
		})
		apps.Patch(layout.AppsBGetDLCDataByIndex,
			func(index int32, appID *uint32, available *bool, name *string) bool {
				entry, ok := s.DLCByIndex(int(index))
				if !ok {
					return false
				}
				*appID = entry.ID
				*available = true
				if name != nil {
					*name = entry.Name
				}
				return true
			})

		installedOrig, _ := apps.Original(layout.AppsBIsAppInstalled).(func(appID uint32) bool)
		apps.Patch(layout.AppsBIsAppInstalled, func(appID uint32) bool {
			if appID == s.EffectiveAppID() || s.DLCInstalled(appID) {
				return true
			}
			if installedOrig != nil {
				return installedOrig(appID)
			}
			return false
		})

		apps.Patch(layout.AppsGetAppOwner, func(id *uint64) *uint64 {
			*id = r.userID
			return id
		})
		apps.Patch(layout.AppsBIsSubscribedFromFamilySharing, func() bool { return false })
		apps.Patch(layout.AppsBIsTimedTrial, func(allowed, played *uint32) bool {
			return false
		})
	}

	if user := r.descriptors[layout.KindUser]; user != nil {
		user.Patch(layout.UserUserHasLicenseForApp, func(userID uint64, appID uint32) int32 {
			return LicenseResultHasLicense
		})
	}

	if utils := r.descriptors[layout.KindUtils]; utils != nil {
		utils.Patch(layout.UtilsGetAppID, func() uint32 {
			s.RLock()
			defer s.RUnlock()
			return s.Steam.AppID
		})
	}
}
