package titles

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/teknology-hub/tek-game-runtime/settings"
)

// ARK: Survival Ascended. The title authenticates through an external online
// service; the extension can force that path and reroute its API domain
// through a wrapper service.

const asaAppID = 2399830

// cfAPIDomain is the domain the title's binary embeds. A wrapper address
// must fit in its place, so it cannot be longer.
const cfAPIDomain = "api.curseforge.com"

type asaState struct {
	forceEGSAuth bool
	cfAPIWrapper string

	// accountIDStr is rendered from the captured user id at post-init for
	// the external auth flow.
	accountIDStr string
}

var asa asaState

func asaSettingsLoad(s *settings.Settings, doc json.RawMessage) {
	var fields struct {
		ForceEGSAuth *bool   `json:"force_egs_auth"`
		CFAPIWrapper *string `json:"cf_api_wrapper"`
	}
	if json.Unmarshal(doc, &fields) != nil {
		return
	}
	if fields.ForceEGSAuth != nil {
		asa.forceEGSAuth = *fields.ForceEGSAuth
	}
	if fields.CFAPIWrapper != nil {
		asa.cfAPIWrapper = *fields.CFAPIWrapper
	}
}

func asaSettingsSave(s *settings.Settings) []settings.Field {
	fields := []settings.Field{
		{Key: "force_egs_auth", Value: asa.forceEGSAuth},
	}
	if asa.cfAPIWrapper != "" {
		fields = append(fields, settings.Field{Key: "cf_api_wrapper", Value: asa.cfAPIWrapper})
	}
	return fields
}

func asaProcessAttach(s *settings.Settings) bool {
	if len(asa.cfAPIWrapper) > len(cfAPIDomain) {
		Logger().Error("cf_api_wrapper is longer than the embedded domain it replaces",
			zap.String("wrapper", asa.cfAPIWrapper),
			zap.Int("limit", len(cfAPIDomain)))
		return false
	}
	return true
}

func asaPostInit(env *Env) {
	asa.accountIDStr = strconv.FormatUint(env.UserID, 10)
}

func init() {
	Register(Key{Store: settings.StoreSteam, AppID: asaAppID}, Callbacks{
		SettingsLoad:  asaSettingsLoad,
		SettingsSave:  asaSettingsSave,
		ProcessAttach: asaProcessAttach,
		PostInit:      asaPostInit,
	})
}
