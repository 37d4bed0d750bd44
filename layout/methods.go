package layout

// Logical method IDs: stable, revision-independent identifiers for the
// operations of each capability-object kind. Assigned once, never
// renumbered; slot maps translate them to revision-specific table indices.

// Apps methods.
const (
	AppsBIsSubscribed = iota
	AppsBIsLowViolence
	AppsBIsCybercafe
	AppsBIsVACBanned
	AppsGetCurrentGameLanguage
	AppsGetAvailableGameLanguages
	AppsBIsSubscribedApp
	AppsBIsDlcInstalled
	AppsGetEarliestPurchaseUnixTime
	AppsBIsSubscribedFromFreeWeekend
	AppsGetDLCCount
	AppsBGetDLCDataByIndex
	AppsInstallDLC
	AppsUninstallDLC
	AppsRequestAppProofOfPurchaseKey
	AppsGetCurrentBetaName
	AppsMarkContentCorrupt
	AppsGetInstalledDepots
	AppsGetAppInstallDir
	AppsBIsAppInstalled
	AppsGetAppOwner
	AppsGetLaunchQueryParam
	AppsGetDlcDownloadProgress
	AppsGetAppBuildId
	AppsRequestAllProofOfPurchaseKeys
	AppsGetFileDetails
	AppsGetLaunchCommandLine
	AppsBIsSubscribedFromFamilySharing
	AppsBIsTimedTrial
	AppsSetDlcContext
	AppsGetNumBetas
	AppsGetBetaInfo
	AppsSetActiveBeta
	NumAppsMethods = 33
)

// Matchmaking methods.
const (
	MatchmakingGetFavoriteGameCount = iota
	MatchmakingGetFavoriteGame
	MatchmakingAddFavoriteGame
	MatchmakingRemoveFavoriteGame
	MatchmakingRequestLobbyList
	MatchmakingAddRequestLobbyListStringFilter
	MatchmakingAddRequestLobbyListNumericalFilter
	MatchmakingAddRequestLobbyListNearValueFilter
	MatchmakingAddRequestLobbyListFilterSlotsAvailable
	MatchmakingAddRequestLobbyListDistanceFilter
	MatchmakingAddRequestLobbyListResultCountFilter
	MatchmakingAddRequestLobbyListCompatibleMembersFilter
	MatchmakingGetLobbyByIndex
	MatchmakingCreateLobby
	MatchmakingJoinLobby
	MatchmakingLeaveLobby
	MatchmakingInviteUserToLobby
	MatchmakingGetNumLobbyMembers
	MatchmakingGetLobbyMemberByIndex
	MatchmakingGetLobbyData
	MatchmakingSetLobbyData
	MatchmakingGetLobbyDataCount
	MatchmakingGetLobbyDataByIndex
	MatchmakingDeleteLobbyData
	MatchmakingGetLobbyMemberData
	MatchmakingSetLobbyMemberData
	MatchmakingSendLobbyChatMsg
	MatchmakingGetLobbyChatEntry
	MatchmakingRequestLobbyData
	MatchmakingSetLobbyGameServer
	MatchmakingGetLobbyGameServer
	MatchmakingSetLobbyMemberLimit
	MatchmakingGetLobbyMemberLimit
	MatchmakingSetLobbyType
	MatchmakingSetLobbyJoinable
	MatchmakingGetLobbyOwner
	MatchmakingSetLobbyOwner
	MatchmakingSetLinkedLobby
	NumMatchmakingMethods = 38
)

// MatchmakingServers methods.
const (
	MatchmakingServersRequestInternetServerList = iota
	MatchmakingServersRequestLANServerList
	MatchmakingServersRequestFriendsServerList
	MatchmakingServersRequestFavoritesServerList
	MatchmakingServersRequestHistoryServerList
	MatchmakingServersRequestSpectatorServerList
	MatchmakingServersReleaseRequest
	MatchmakingServersGetServerDetails
	MatchmakingServersCancelQuery
	MatchmakingServersRefreshQuery
	MatchmakingServersIsRefreshing
	MatchmakingServersGetServerCount
	MatchmakingServersRefreshServer
	MatchmakingServersPingServer
	MatchmakingServersPlayerDetails
	MatchmakingServersServerRules
	MatchmakingServersCancelServerQuery
	NumMatchmakingServersMethods = 17
)

// UGC methods.
const (
	UGCCreateQueryUserUGCRequest = iota
	UGCCreateQueryAllUGCRequestCursor
	UGCCreateQueryAllUGCRequestPage
	UGCCreateQueryUGCDetailsRequest
	UGCSendQueryUGCRequest
	UGCGetQueryUGCResult
	UGCGetQueryUGCNumTags
	UGCGetQueryUGCTag
	UGCGetQueryUGCTagDisplayName
	UGCGetQueryUGCPreviewURL
	UGCGetQueryUGCMetadata
	UGCGetQueryUGCChildren
	UGCGetQueryUGCStatistic
	UGCGetQueryUGCNumAdditionalPreviews
	UGCGetQueryUGCAdditionalPreview
	UGCGetQueryUGCNumKeyValueTags
	UGCGetQueryFirstUGCKeyValueTag
	UGCGetQueryUGCKeyValueTag
	UGCGetNumSupportedGameVersions
	UGCGetSupportedGameVersionData
	UGCGetQueryUGCContentDescriptors
	UGCReleaseQueryUGCRequest
	UGCAddRequiredTag
	UGCAddRequiredTagGroup
	UGCAddExcludedTag
	UGCSetReturnOnlyIDs
	UGCSetReturnKeyValueTags
	UGCSetReturnLongDescription
	UGCSetReturnMetadata
	UGCSetReturnChildren
	UGCSetReturnAdditionalPreviews
	UGCSetReturnTotalOnly
	UGCSetReturnPlaytimeStats
	UGCSetLanguage
	UGCSetAllowCachedResponse
	UGCSetAdminQuery
	UGCSetCloudFileNameFilter
	UGCSetMatchAnyTag
	UGCSetSearchText
	UGCSetRankedByTrendDays
	UGCSetTimeCreatedDateRange
	UGCSetTimeUpdatedDateRange
	UGCAddRequiredKeyValueTag
	UGCRequestUGCDetails
	UGCCreateItem
	UGCStartItemUpdate
	UGCSetItemTitle
	UGCSetItemDescription
	UGCSetItemUpdateLanguage
	UGCSetItemMetadata
	UGCSetItemVisibility
	UGCSetItemTags
	UGCSetItemContent
	UGCSetItemPreview
	UGCSetAllowLegacyUpload
	UGCRemoveAllItemKeyValueTags
	UGCRemoveItemKeyValueTags
	UGCAddItemKeyValueTag
	UGCAddItemPreviewFile
	UGCAddItemPreviewVideo
	UGCUpdateItemPreviewFile
	UGCUpdateItemPreviewVideo
	UGCRemoveItemPreview
	UGCAddContentDescriptor
	UGCRemoveContentDescriptor
	UGCSetRequiredGameVersions
	UGCSubmitItemUpdate
	UGCGetItemUpdateProgress
	UGCSetUserItemVote
	UGCGetUserItemVote
	UGCAddItemToFavorites
	UGCRemoveItemFromFavorites
	UGCSubscribeItem
	UGCUnsubscribeItem
	UGCGetNumSubscribedItems
	UGCGetSubscribedItems
	UGCGetItemState
	UGCGetItemInstallInfo
	UGCGetItemDownloadInfo
	UGCDownloadItem
	UGCBInitWorkshopForGameServer
	UGCSuspendDownloads
	UGCStartPlaytimeTracking
	UGCStopPlaytimeTracking
	UGCStopPlaytimeTrackingForAllItems
	UGCAddDependency
	UGCRemoveDependency
	UGCAddAppDependency
	UGCRemoveAppDependency
	UGCGetAppDependencies
	UGCDeleteItem
	UGCShowWorkshopEULA
	UGCGetWorkshopEULAStatus
	UGCGetUserContentDescriptorPreferences
	UGCSetItemsDisabledLocally
	UGCSetSubscriptionsLoadOrder
	UGCGetItemUpdateInfo = UGCGetItemDownloadInfo
	NumUGCMethods = 96
)

// User methods.
const (
	UserGetHSteamUser = iota
	UserBLoggedOn
	UserGetSteamID
	UserInitiateGameConnection
	UserTerminateGameConnection
	UserTrackAppUsageEvent
	UserGetUserDataFolder
	UserStartVoiceRecording
	UserStopVoiceRecording
	UserGetAvailableVoice
	UserGetVoice
	UserDecompressVoice
	UserGetVoiceOptimalSampleRate
	UserGetAuthSessionTicket
	UserGetAuthTicketForWebApi
	UserBeginAuthSession
	UserEndAuthSession
	UserCancelAuthTicket
	UserUserHasLicenseForApp
	UserBIsBehindNAT
	UserAdvertiseGame
	UserRequestEncryptedAppTicket
	UserGetEncryptedAppTicket
	UserGetGameBadgeLevel
	UserGetPlayerSteamLevel
	UserRequestStoreAuthURL
	UserBIsPhoneVerified
	UserBIsTwoFactorEnabled
	UserBIsPhoneIdentifying
	UserBIsPhoneRequiringVerification
	UserGetMarketEligibility
	UserGetDurationControl
	UserBSetDurationControlOnlineState
	NumUserMethods = 33
)

// Utils methods.
const (
	UtilsGetSecondsSinceAppActive = iota
	UtilsGetSecondsSinceComputerActive
	UtilsGetConnectedUniverse
	UtilsGetServerRealTime
	UtilsGetIPCountry
	UtilsGetImageSize
	UtilsGetImageRGBA
	UtilsGetCSERIPPort
	UtilsGetCurrentBatteryPower
	UtilsGetAppID
	UtilsSetOverlayNotificationPosition
	UtilsIsAPICallCompleted
	UtilsGetAPICallFailureReason
	UtilsGetAPICallResult
	UtilsRunFrame
	UtilsGetIPCCallCount
	UtilsSetWarningMessageHook
	UtilsIsOverlayEnabled
	UtilsBOverlayNeedsPresent
	UtilsCheckFileSignature
	UtilsShowGamepadTextInput
	UtilsGetEnteredGamepadTextLength
	UtilsGetEnteredGamepadTextInput
	UtilsGetSteamUILanguage
	UtilsIsSteamRunningInVR
	UtilsSetOverlayNotificationInset
	UtilsIsSteamInBigPictureMode
	UtilsStartVRDashboard
	UtilsIsVRHeadsetStreamingEnabled
	UtilsSetVRHeadsetStreamingEnabled
	UtilsIsSteamChinaLauncher
	UtilsInitFilterText
	UtilsFilterText
	UtilsGetIPv6ConnectivityState
	UtilsIsSteamRunningOnSteamDeck
	UtilsShowFloatingGamepadTextInput
	UtilsSetGameLauncherMode
	UtilsDismissFloatingGamepadTextInput
	UtilsDismissGamepadTextInput
	NumUtilsMethods = 39
)
