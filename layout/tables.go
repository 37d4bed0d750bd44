package layout

// Revision tables: per capability-object kind, the ordered literal list of
// (minimum-version-threshold, method-count, slot-map) entries, highest
// threshold first. These figures are the wire contract with the target
// library's historical ABI revisions and are reproduced exactly, not
// approximated.

var appsTable = Table{
	Kind:       KindApps,
	MaxMethods: NumAppsMethods,
	Entries: []Entry{
		// "STEAMAPPS_INTERFACE_VERSION008", used since Steamworks SDK v1.37
		{
			MinVersion: 0x0003002A003D0042, // 03.42.61.66
			NumMethods: 33,
			Slots:      identity(NumAppsMethods, 33),
		},
		// "STEAMAPPS_INTERFACE_VERSION007", used since Steamworks SDK v1.32
		{
			MinVersion: 0x0002003B0033002B, // 02.59.51.43
			NumMethods: 24,
			Slots:      identity(NumAppsMethods, 24),
		},
		// "STEAMAPPS_INTERFACE_VERSION006", used since Steamworks SDK v1.26
		{
			MinVersion: 0x00010062001F0049, // 01.98.31.73
			NumMethods: 22,
			Slots:      identity(NumAppsMethods, 22),
		},
		// "STEAMAPPS_INTERFACE_VERSION005", used since Steamworks SDK v1.18
		{
			MinVersion: 0x0001001E0032002E, // 01.30.50.46
			NumMethods: 20,
			Slots:      identity(NumAppsMethods, 20),
		},
		// "STEAMAPPS_INTERFACE_VERSION004", used since Steamworks SDK v1.12
		{
			MinVersion: 0x0000006000210030, // 00.96.33.48
			NumMethods: 14,
			Slots:      identity(NumAppsMethods, 14),
		},
		// "STEAMAPPS_INTERFACE_VERSION003", used in Steamworks SDK v1.11
		{
			MinVersion: 0,
			NumMethods: 8,
			Slots:      identity(NumAppsMethods, 8),
		},
	},
}

var matchmakingTable = Table{
	Kind:       KindMatchmaking,
	MaxMethods: NumMatchmakingMethods,
	Entries: []Entry{
		// "SteamMatchMaking009", used since Steamworks SDK v1.17
		{
			MinVersion: 0x00010017002D005D, // 01.23.45.93
			NumMethods: 38,
			Slots:      identity(NumMatchmakingMethods, 38),
		},
		// "SteamMatchMaking008", used in older supported Steamworks SDK versions
		{
			MinVersion: 0,
			NumMethods: 36,
			Slots: sparse(NumMatchmakingMethods, map[int]int{
				MatchmakingGetFavoriteGameCount: 0,
				MatchmakingGetFavoriteGame: 1,
				MatchmakingAddFavoriteGame: 2,
				MatchmakingRemoveFavoriteGame: 3,
				MatchmakingRequestLobbyList: 4,
				MatchmakingAddRequestLobbyListStringFilter: 5,
				MatchmakingAddRequestLobbyListNumericalFilter: 6,
				MatchmakingAddRequestLobbyListNearValueFilter: 7,
				MatchmakingAddRequestLobbyListFilterSlotsAvailable: 8,
				MatchmakingAddRequestLobbyListDistanceFilter: 9,
				MatchmakingAddRequestLobbyListResultCountFilter: 10,
				MatchmakingGetLobbyByIndex: 11,
				MatchmakingCreateLobby: 12,
				MatchmakingJoinLobby: 13,
				MatchmakingLeaveLobby: 14,
				MatchmakingInviteUserToLobby: 15,
				MatchmakingGetNumLobbyMembers: 16,
				MatchmakingGetLobbyMemberByIndex: 17,
				MatchmakingGetLobbyData: 18,
				MatchmakingSetLobbyData: 19,
				MatchmakingGetLobbyDataCount: 20,
				MatchmakingGetLobbyDataByIndex: 21,
				MatchmakingDeleteLobbyData: 22,
				MatchmakingGetLobbyMemberData: 23,
				MatchmakingSetLobbyMemberData: 24,
				MatchmakingSendLobbyChatMsg: 25,
				MatchmakingGetLobbyChatEntry: 26,
				MatchmakingRequestLobbyData: 27,
				MatchmakingSetLobbyGameServer: 28,
				MatchmakingGetLobbyGameServer: 29,
				MatchmakingSetLobbyMemberLimit: 30,
				MatchmakingGetLobbyMemberLimit: 31,
				MatchmakingSetLobbyType: 32,
				MatchmakingSetLobbyJoinable: 33,
				MatchmakingGetLobbyOwner: 34,
				MatchmakingSetLobbyOwner: 35,
			}),
		},
	},
}

var matchmakingServersTable = Table{
	Kind:       KindMatchmakingServers,
	MaxMethods: NumMatchmakingServersMethods,
	Entries: []Entry{
		// "SteamMatchMakingServers002", used at all supported versions
		{
			MinVersion: 0,
			NumMethods: 17,
			Slots:      identity(NumMatchmakingServersMethods, 17),
		},
	},
}

var ugcTable = Table{
	Kind:       KindUGC,
	MaxMethods: NumUGCMethods,
	Entries: []Entry{
		// "STEAMUGC_INTERFACE_VERSION021", used in Steamworks SDK v1.62
		{
			MinVersion: 0x0009003C002C000A, // 09.60.44.10
			NumMethods: 96,
			Slots:      identity(NumUGCMethods, 96),
		},
		// "STEAMUGC_INTERFACE_VERSION020", used since Steamworks SDK v1.60
		{
			MinVersion: 0x0008006100630046, // 08.97.99.70
			NumMethods: 94,
			Slots:      identity(NumUGCMethods, 94),
		},
		// "STEAMUGC_INTERFACE_VERSION018", used since Steamworks SDK v1.58
		{
			MinVersion: 0x0008002100090017, // 08.33.09.23
			NumMethods: 90,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCNumTags: 6,
				UGCGetQueryUGCTag: 7,
				UGCGetQueryUGCTagDisplayName: 8,
				UGCGetQueryUGCPreviewURL: 9,
				UGCGetQueryUGCMetadata: 10,
				UGCGetQueryUGCChildren: 11,
				UGCGetQueryUGCStatistic: 12,
				UGCGetQueryUGCNumAdditionalPreviews: 13,
				UGCGetQueryUGCAdditionalPreview: 14,
				UGCGetQueryUGCNumKeyValueTags: 15,
				UGCGetQueryFirstUGCKeyValueTag: 16,
				UGCGetQueryUGCKeyValueTag: 17,
				UGCGetQueryUGCContentDescriptors: 18,
				UGCReleaseQueryUGCRequest: 19,
				UGCAddRequiredTag: 20,
				UGCAddRequiredTagGroup: 21,
				UGCAddExcludedTag: 22,
				UGCSetReturnOnlyIDs: 23,
				UGCSetReturnKeyValueTags: 24,
				UGCSetReturnLongDescription: 25,
				UGCSetReturnMetadata: 26,
				UGCSetReturnChildren: 27,
				UGCSetReturnAdditionalPreviews: 28,
				UGCSetReturnTotalOnly: 29,
				UGCSetReturnPlaytimeStats: 30,
				UGCSetLanguage: 31,
				UGCSetAllowCachedResponse: 32,
				UGCSetCloudFileNameFilter: 33,
				UGCSetMatchAnyTag: 34,
				UGCSetSearchText: 35,
				UGCSetRankedByTrendDays: 36,
				UGCSetTimeCreatedDateRange: 37,
				UGCSetTimeUpdatedDateRange: 38,
				UGCAddRequiredKeyValueTag: 39,
				UGCRequestUGCDetails: 40,
				UGCCreateItem: 41,
				UGCStartItemUpdate: 42,
				UGCSetItemTitle: 43,
				UGCSetItemDescription: 44,
				UGCSetItemUpdateLanguage: 45,
				UGCSetItemMetadata: 46,
				UGCSetItemVisibility: 47,
				UGCSetItemTags: 48,
				UGCSetItemContent: 49,
				UGCSetItemPreview: 50,
				UGCSetAllowLegacyUpload: 51,
				UGCRemoveAllItemKeyValueTags: 52,
				UGCRemoveItemKeyValueTags: 53,
				UGCAddItemKeyValueTag: 54,
				UGCAddItemPreviewFile: 55,
				UGCAddItemPreviewVideo: 56,
				UGCUpdateItemPreviewFile: 57,
				UGCUpdateItemPreviewVideo: 58,
				UGCRemoveItemPreview: 59,
				UGCAddContentDescriptor: 60,
				UGCRemoveContentDescriptor: 61,
				UGCSubmitItemUpdate: 62,
				UGCGetItemUpdateProgress: 63,
				UGCSetUserItemVote: 64,
				UGCGetUserItemVote: 65,
				UGCAddItemToFavorites: 66,
				UGCRemoveItemFromFavorites: 67,
				UGCSubscribeItem: 68,
				UGCUnsubscribeItem: 69,
				UGCGetNumSubscribedItems: 70,
				UGCGetSubscribedItems: 71,
				UGCGetItemState: 72,
				UGCGetItemInstallInfo: 73,
				UGCGetItemDownloadInfo: 74,
				UGCDownloadItem: 75,
				UGCBInitWorkshopForGameServer: 76,
				UGCSuspendDownloads: 77,
				UGCStartPlaytimeTracking: 78,
				UGCStopPlaytimeTracking: 79,
				UGCStopPlaytimeTrackingForAllItems: 80,
				UGCAddDependency: 81,
				UGCRemoveDependency: 82,
				UGCAddAppDependency: 83,
				UGCRemoveAppDependency: 84,
				UGCGetAppDependencies: 85,
				UGCDeleteItem: 86,
				UGCShowWorkshopEULA: 87,
				UGCGetWorkshopEULAStatus: 88,
				UGCGetUserContentDescriptorPreferences: 89,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION017", used since Steamworks SDK v1.56
		{
			MinVersion: 0x000700600000002C, // 07.96.00.44
			NumMethods: 89,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCNumTags: 6,
				UGCGetQueryUGCTag: 7,
				UGCGetQueryUGCTagDisplayName: 8,
				UGCGetQueryUGCPreviewURL: 9,
				UGCGetQueryUGCMetadata: 10,
				UGCGetQueryUGCChildren: 11,
				UGCGetQueryUGCStatistic: 12,
				UGCGetQueryUGCNumAdditionalPreviews: 13,
				UGCGetQueryUGCAdditionalPreview: 14,
				UGCGetQueryUGCNumKeyValueTags: 15,
				UGCGetQueryFirstUGCKeyValueTag: 16,
				UGCGetQueryUGCKeyValueTag: 17,
				UGCGetQueryUGCContentDescriptors: 18,
				UGCReleaseQueryUGCRequest: 19,
				UGCAddRequiredTag: 20,
				UGCAddRequiredTagGroup: 21,
				UGCAddExcludedTag: 22,
				UGCSetReturnOnlyIDs: 23,
				UGCSetReturnKeyValueTags: 24,
				UGCSetReturnLongDescription: 25,
				UGCSetReturnMetadata: 26,
				UGCSetReturnChildren: 27,
				UGCSetReturnAdditionalPreviews: 28,
				UGCSetReturnTotalOnly: 29,
				UGCSetReturnPlaytimeStats: 30,
				UGCSetLanguage: 31,
				UGCSetAllowCachedResponse: 32,
				UGCSetCloudFileNameFilter: 33,
				UGCSetMatchAnyTag: 34,
				UGCSetSearchText: 35,
				UGCSetRankedByTrendDays: 36,
				UGCSetTimeCreatedDateRange: 37,
				UGCSetTimeUpdatedDateRange: 38,
				UGCAddRequiredKeyValueTag: 39,
				UGCRequestUGCDetails: 40,
				UGCCreateItem: 41,
				UGCStartItemUpdate: 42,
				UGCSetItemTitle: 43,
				UGCSetItemDescription: 44,
				UGCSetItemUpdateLanguage: 45,
				UGCSetItemMetadata: 46,
				UGCSetItemVisibility: 47,
				UGCSetItemTags: 48,
				UGCSetItemContent: 49,
				UGCSetItemPreview: 50,
				UGCSetAllowLegacyUpload: 51,
				UGCRemoveAllItemKeyValueTags: 52,
				UGCRemoveItemKeyValueTags: 53,
				UGCAddItemKeyValueTag: 54,
				UGCAddItemPreviewFile: 55,
				UGCAddItemPreviewVideo: 56,
				UGCUpdateItemPreviewFile: 57,
				UGCUpdateItemPreviewVideo: 58,
				UGCRemoveItemPreview: 59,
				UGCAddContentDescriptor: 60,
				UGCRemoveContentDescriptor: 61,
				UGCSubmitItemUpdate: 62,
				UGCGetItemUpdateProgress: 63,
				UGCSetUserItemVote: 64,
				UGCGetUserItemVote: 65,
				UGCAddItemToFavorites: 66,
				UGCRemoveItemFromFavorites: 67,
				UGCSubscribeItem: 68,
				UGCUnsubscribeItem: 69,
				UGCGetNumSubscribedItems: 70,
				UGCGetSubscribedItems: 71,
				UGCGetItemState: 72,
				UGCGetItemInstallInfo: 73,
				UGCGetItemDownloadInfo: 74,
				UGCDownloadItem: 75,
				UGCBInitWorkshopForGameServer: 76,
				UGCSuspendDownloads: 77,
				UGCStartPlaytimeTracking: 78,
				UGCStopPlaytimeTracking: 79,
				UGCStopPlaytimeTrackingForAllItems: 80,
				UGCAddDependency: 81,
				UGCRemoveDependency: 82,
				UGCAddAppDependency: 83,
				UGCRemoveAppDependency: 84,
				UGCGetAppDependencies: 85,
				UGCDeleteItem: 86,
				UGCShowWorkshopEULA: 87,
				UGCGetWorkshopEULAStatus: 88,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION016", used since Steamworks SDK v1.53
		{
			MinVersion: 0x0006005B00150039, // 06.91.21.57
			NumMethods: 86,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCNumTags: 6,
				UGCGetQueryUGCTag: 7,
				UGCGetQueryUGCTagDisplayName: 8,
				UGCGetQueryUGCPreviewURL: 9,
				UGCGetQueryUGCMetadata: 10,
				UGCGetQueryUGCChildren: 11,
				UGCGetQueryUGCStatistic: 12,
				UGCGetQueryUGCNumAdditionalPreviews: 13,
				UGCGetQueryUGCAdditionalPreview: 14,
				UGCGetQueryUGCNumKeyValueTags: 15,
				UGCGetQueryFirstUGCKeyValueTag: 16,
				UGCGetQueryUGCKeyValueTag: 17,
				UGCReleaseQueryUGCRequest: 18,
				UGCAddRequiredTag: 19,
				UGCAddRequiredTagGroup: 20,
				UGCAddExcludedTag: 21,
				UGCSetReturnOnlyIDs: 22,
				UGCSetReturnKeyValueTags: 23,
				UGCSetReturnLongDescription: 24,
				UGCSetReturnMetadata: 25,
				UGCSetReturnChildren: 26,
				UGCSetReturnAdditionalPreviews: 27,
				UGCSetReturnTotalOnly: 28,
				UGCSetReturnPlaytimeStats: 29,
				UGCSetLanguage: 30,
				UGCSetAllowCachedResponse: 31,
				UGCSetCloudFileNameFilter: 32,
				UGCSetMatchAnyTag: 33,
				UGCSetSearchText: 34,
				UGCSetRankedByTrendDays: 35,
				UGCSetTimeCreatedDateRange: 36,
				UGCSetTimeUpdatedDateRange: 37,
				UGCAddRequiredKeyValueTag: 38,
				UGCRequestUGCDetails: 39,
				UGCCreateItem: 40,
				UGCStartItemUpdate: 41,
				UGCSetItemTitle: 42,
				UGCSetItemDescription: 43,
				UGCSetItemUpdateLanguage: 44,
				UGCSetItemMetadata: 45,
				UGCSetItemVisibility: 46,
				UGCSetItemTags: 47,
				UGCSetItemContent: 48,
				UGCSetItemPreview: 49,
				UGCSetAllowLegacyUpload: 50,
				UGCRemoveAllItemKeyValueTags: 51,
				UGCRemoveItemKeyValueTags: 52,
				UGCAddItemKeyValueTag: 53,
				UGCAddItemPreviewFile: 54,
				UGCAddItemPreviewVideo: 55,
				UGCUpdateItemPreviewFile: 56,
				UGCUpdateItemPreviewVideo: 57,
				UGCRemoveItemPreview: 58,
				UGCSubmitItemUpdate: 59,
				UGCGetItemUpdateProgress: 60,
				UGCSetUserItemVote: 61,
				UGCGetUserItemVote: 62,
				UGCAddItemToFavorites: 63,
				UGCRemoveItemFromFavorites: 64,
				UGCSubscribeItem: 65,
				UGCUnsubscribeItem: 66,
				UGCGetNumSubscribedItems: 67,
				UGCGetSubscribedItems: 68,
				UGCGetItemState: 69,
				UGCGetItemInstallInfo: 70,
				UGCGetItemDownloadInfo: 71,
				UGCDownloadItem: 72,
				UGCBInitWorkshopForGameServer: 73,
				UGCSuspendDownloads: 74,
				UGCStartPlaytimeTracking: 75,
				UGCStopPlaytimeTracking: 76,
				UGCStopPlaytimeTrackingForAllItems: 77,
				UGCAddDependency: 78,
				UGCRemoveDependency: 79,
				UGCAddAppDependency: 80,
				UGCRemoveAppDependency: 81,
				UGCGetAppDependencies: 82,
				UGCDeleteItem: 83,
				UGCShowWorkshopEULA: 84,
				UGCGetWorkshopEULAStatus: 85,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION015", used since Steamworks SDK v1.51
		{
			MinVersion: 0x0006001C00120056, // 06.28.18.86
			NumMethods: 84,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCNumTags: 6,
				UGCGetQueryUGCTag: 7,
				UGCGetQueryUGCTagDisplayName: 8,
				UGCGetQueryUGCPreviewURL: 9,
				UGCGetQueryUGCMetadata: 10,
				UGCGetQueryUGCChildren: 11,
				UGCGetQueryUGCStatistic: 12,
				UGCGetQueryUGCNumAdditionalPreviews: 13,
				UGCGetQueryUGCAdditionalPreview: 14,
				UGCGetQueryUGCNumKeyValueTags: 15,
				UGCGetQueryFirstUGCKeyValueTag: 16,
				UGCGetQueryUGCKeyValueTag: 17,
				UGCReleaseQueryUGCRequest: 18,
				UGCAddRequiredTag: 19,
				UGCAddRequiredTagGroup: 20,
				UGCAddExcludedTag: 21,
				UGCSetReturnOnlyIDs: 22,
				UGCSetReturnKeyValueTags: 23,
				UGCSetReturnLongDescription: 24,
				UGCSetReturnMetadata: 25,
				UGCSetReturnChildren: 26,
				UGCSetReturnAdditionalPreviews: 27,
				UGCSetReturnTotalOnly: 28,
				UGCSetReturnPlaytimeStats: 29,
				UGCSetLanguage: 30,
				UGCSetAllowCachedResponse: 31,
				UGCSetCloudFileNameFilter: 32,
				UGCSetMatchAnyTag: 33,
				UGCSetSearchText: 34,
				UGCSetRankedByTrendDays: 35,
				UGCAddRequiredKeyValueTag: 36,
				UGCRequestUGCDetails: 37,
				UGCCreateItem: 38,
				UGCStartItemUpdate: 39,
				UGCSetItemTitle: 40,
				UGCSetItemDescription: 41,
				UGCSetItemUpdateLanguage: 42,
				UGCSetItemMetadata: 43,
				UGCSetItemVisibility: 44,
				UGCSetItemTags: 45,
				UGCSetItemContent: 46,
				UGCSetItemPreview: 47,
				UGCSetAllowLegacyUpload: 48,
				UGCRemoveAllItemKeyValueTags: 49,
				UGCRemoveItemKeyValueTags: 50,
				UGCAddItemKeyValueTag: 51,
				UGCAddItemPreviewFile: 52,
				UGCAddItemPreviewVideo: 53,
				UGCUpdateItemPreviewFile: 54,
				UGCUpdateItemPreviewVideo: 55,
				UGCRemoveItemPreview: 56,
				UGCSubmitItemUpdate: 57,
				UGCGetItemUpdateProgress: 58,
				UGCSetUserItemVote: 59,
				UGCGetUserItemVote: 60,
				UGCAddItemToFavorites: 61,
				UGCRemoveItemFromFavorites: 62,
				UGCSubscribeItem: 63,
				UGCUnsubscribeItem: 64,
				UGCGetNumSubscribedItems: 65,
				UGCGetSubscribedItems: 66,
				UGCGetItemState: 67,
				UGCGetItemInstallInfo: 68,
				UGCGetItemDownloadInfo: 69,
				UGCDownloadItem: 70,
				UGCBInitWorkshopForGameServer: 71,
				UGCSuspendDownloads: 72,
				UGCStartPlaytimeTracking: 73,
				UGCStopPlaytimeTracking: 74,
				UGCStopPlaytimeTrackingForAllItems: 75,
				UGCAddDependency: 76,
				UGCRemoveDependency: 77,
				UGCAddAppDependency: 78,
				UGCRemoveAppDependency: 79,
				UGCGetAppDependencies: 80,
				UGCDeleteItem: 81,
				UGCShowWorkshopEULA: 82,
				UGCGetWorkshopEULAStatus: 83,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION014", used since Steamworks SDK v1.47
		{
			MinVersion: 0x000500350021004E, // 05.53.33.78
			NumMethods: 79,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCPreviewURL: 6,
				UGCGetQueryUGCMetadata: 7,
				UGCGetQueryUGCChildren: 8,
				UGCGetQueryUGCStatistic: 9,
				UGCGetQueryUGCNumAdditionalPreviews: 10,
				UGCGetQueryUGCAdditionalPreview: 11,
				UGCGetQueryUGCNumKeyValueTags: 12,
				UGCGetQueryFirstUGCKeyValueTag: 13,
				UGCGetQueryUGCKeyValueTag: 14,
				UGCReleaseQueryUGCRequest: 15,
				UGCAddRequiredTag: 16,
				UGCAddRequiredTagGroup: 17,
				UGCAddExcludedTag: 18,
				UGCSetReturnOnlyIDs: 19,
				UGCSetReturnKeyValueTags: 20,
				UGCSetReturnLongDescription: 21,
				UGCSetReturnMetadata: 22,
				UGCSetReturnChildren: 23,
				UGCSetReturnAdditionalPreviews: 24,
				UGCSetReturnTotalOnly: 25,
				UGCSetReturnPlaytimeStats: 26,
				UGCSetLanguage: 27,
				UGCSetAllowCachedResponse: 28,
				UGCSetCloudFileNameFilter: 29,
				UGCSetMatchAnyTag: 30,
				UGCSetSearchText: 31,
				UGCSetRankedByTrendDays: 32,
				UGCAddRequiredKeyValueTag: 33,
				UGCRequestUGCDetails: 34,
				UGCCreateItem: 35,
				UGCStartItemUpdate: 36,
				UGCSetItemTitle: 37,
				UGCSetItemDescription: 38,
				UGCSetItemUpdateLanguage: 39,
				UGCSetItemMetadata: 40,
				UGCSetItemVisibility: 41,
				UGCSetItemTags: 42,
				UGCSetItemContent: 43,
				UGCSetItemPreview: 44,
				UGCSetAllowLegacyUpload: 45,
				UGCRemoveAllItemKeyValueTags: 46,
				UGCRemoveItemKeyValueTags: 47,
				UGCAddItemKeyValueTag: 48,
				UGCAddItemPreviewFile: 49,
				UGCAddItemPreviewVideo: 50,
				UGCUpdateItemPreviewFile: 51,
				UGCUpdateItemPreviewVideo: 52,
				UGCRemoveItemPreview: 53,
				UGCSubmitItemUpdate: 54,
				UGCGetItemUpdateProgress: 55,
				UGCSetUserItemVote: 56,
				UGCGetUserItemVote: 57,
				UGCAddItemToFavorites: 58,
				UGCRemoveItemFromFavorites: 59,
				UGCSubscribeItem: 60,
				UGCUnsubscribeItem: 61,
				UGCGetNumSubscribedItems: 62,
				UGCGetSubscribedItems: 63,
				UGCGetItemState: 64,
				UGCGetItemInstallInfo: 65,
				UGCGetItemDownloadInfo: 66,
				UGCDownloadItem: 67,
				UGCBInitWorkshopForGameServer: 68,
				UGCSuspendDownloads: 69,
				UGCStartPlaytimeTracking: 70,
				UGCStopPlaytimeTracking: 71,
				UGCStopPlaytimeTrackingForAllItems: 72,
				UGCAddDependency: 73,
				UGCRemoveDependency: 74,
				UGCAddAppDependency: 75,
				UGCRemoveAppDependency: 76,
				UGCGetAppDependencies: 77,
				UGCDeleteItem: 78,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION013", used since Steamworks SDK v1.45
		{
			MinVersion: 0x000500130026003E, // 05.19.38.62
			NumMethods: 78,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCPreviewURL: 6,
				UGCGetQueryUGCMetadata: 7,
				UGCGetQueryUGCChildren: 8,
				UGCGetQueryUGCStatistic: 9,
				UGCGetQueryUGCNumAdditionalPreviews: 10,
				UGCGetQueryUGCAdditionalPreview: 11,
				UGCGetQueryUGCNumKeyValueTags: 12,
				UGCGetQueryFirstUGCKeyValueTag: 13,
				UGCGetQueryUGCKeyValueTag: 14,
				UGCReleaseQueryUGCRequest: 15,
				UGCAddRequiredTag: 16,
				UGCAddExcludedTag: 17,
				UGCSetReturnOnlyIDs: 18,
				UGCSetReturnKeyValueTags: 19,
				UGCSetReturnLongDescription: 20,
				UGCSetReturnMetadata: 21,
				UGCSetReturnChildren: 22,
				UGCSetReturnAdditionalPreviews: 23,
				UGCSetReturnTotalOnly: 24,
				UGCSetReturnPlaytimeStats: 25,
				UGCSetLanguage: 26,
				UGCSetAllowCachedResponse: 27,
				UGCSetCloudFileNameFilter: 28,
				UGCSetMatchAnyTag: 29,
				UGCSetSearchText: 30,
				UGCSetRankedByTrendDays: 31,
				UGCAddRequiredKeyValueTag: 32,
				UGCRequestUGCDetails: 33,
				UGCCreateItem: 34,
				UGCStartItemUpdate: 35,
				UGCSetItemTitle: 36,
				UGCSetItemDescription: 37,
				UGCSetItemUpdateLanguage: 38,
				UGCSetItemMetadata: 39,
				UGCSetItemVisibility: 40,
				UGCSetItemTags: 41,
				UGCSetItemContent: 42,
				UGCSetItemPreview: 43,
				UGCSetAllowLegacyUpload: 44,
				UGCRemoveAllItemKeyValueTags: 45,
				UGCRemoveItemKeyValueTags: 46,
				UGCAddItemKeyValueTag: 47,
				UGCAddItemPreviewFile: 48,
				UGCAddItemPreviewVideo: 49,
				UGCUpdateItemPreviewFile: 50,
				UGCUpdateItemPreviewVideo: 51,
				UGCRemoveItemPreview: 52,
				UGCSubmitItemUpdate: 53,
				UGCGetItemUpdateProgress: 54,
				UGCSetUserItemVote: 55,
				UGCGetUserItemVote: 56,
				UGCAddItemToFavorites: 57,
				UGCRemoveItemFromFavorites: 58,
				UGCSubscribeItem: 59,
				UGCUnsubscribeItem: 60,
				UGCGetNumSubscribedItems: 61,
				UGCGetSubscribedItems: 62,
				UGCGetItemState: 63,
				UGCGetItemInstallInfo: 64,
				UGCGetItemDownloadInfo: 65,
				UGCDownloadItem: 66,
				UGCBInitWorkshopForGameServer: 67,
				UGCSuspendDownloads: 68,
				UGCStartPlaytimeTracking: 69,
				UGCStopPlaytimeTracking: 70,
				UGCStopPlaytimeTrackingForAllItems: 71,
				UGCAddDependency: 72,
				UGCRemoveDependency: 73,
				UGCAddAppDependency: 74,
				UGCRemoveAppDependency: 75,
				UGCGetAppDependencies: 76,
				UGCDeleteItem: 77,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION012", used since Steamworks SDK v1.43
		{
			MinVersion: 0x0004005F0014001E, // 04.95.20.30
			NumMethods: 76,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestCursor: 1,
				UGCCreateQueryAllUGCRequestPage: 2,
				UGCCreateQueryUGCDetailsRequest: 3,
				UGCSendQueryUGCRequest: 4,
				UGCGetQueryUGCResult: 5,
				UGCGetQueryUGCPreviewURL: 6,
				UGCGetQueryUGCMetadata: 7,
				UGCGetQueryUGCChildren: 8,
				UGCGetQueryUGCStatistic: 9,
				UGCGetQueryUGCNumAdditionalPreviews: 10,
				UGCGetQueryUGCAdditionalPreview: 11,
				UGCGetQueryUGCNumKeyValueTags: 12,
				UGCGetQueryUGCKeyValueTag: 13,
				UGCReleaseQueryUGCRequest: 14,
				UGCAddRequiredTag: 15,
				UGCAddExcludedTag: 16,
				UGCSetReturnOnlyIDs: 17,
				UGCSetReturnKeyValueTags: 18,
				UGCSetReturnLongDescription: 19,
				UGCSetReturnMetadata: 20,
				UGCSetReturnChildren: 21,
				UGCSetReturnAdditionalPreviews: 22,
				UGCSetReturnTotalOnly: 23,
				UGCSetReturnPlaytimeStats: 24,
				UGCSetLanguage: 25,
				UGCSetAllowCachedResponse: 26,
				UGCSetCloudFileNameFilter: 27,
				UGCSetMatchAnyTag: 28,
				UGCSetSearchText: 29,
				UGCSetRankedByTrendDays: 30,
				UGCAddRequiredKeyValueTag: 31,
				UGCRequestUGCDetails: 32,
				UGCCreateItem: 33,
				UGCStartItemUpdate: 34,
				UGCSetItemTitle: 35,
				UGCSetItemDescription: 36,
				UGCSetItemUpdateLanguage: 37,
				UGCSetItemMetadata: 38,
				UGCSetItemVisibility: 39,
				UGCSetItemTags: 40,
				UGCSetItemContent: 41,
				UGCSetItemPreview: 42,
				UGCSetAllowLegacyUpload: 43,
				UGCRemoveItemKeyValueTags: 44,
				UGCAddItemKeyValueTag: 45,
				UGCAddItemPreviewFile: 46,
				UGCAddItemPreviewVideo: 47,
				UGCUpdateItemPreviewFile: 48,
				UGCUpdateItemPreviewVideo: 49,
				UGCRemoveItemPreview: 50,
				UGCSubmitItemUpdate: 51,
				UGCGetItemUpdateProgress: 52,
				UGCSetUserItemVote: 53,
				UGCGetUserItemVote: 54,
				UGCAddItemToFavorites: 55,
				UGCRemoveItemFromFavorites: 56,
				UGCSubscribeItem: 57,
				UGCUnsubscribeItem: 58,
				UGCGetNumSubscribedItems: 59,
				UGCGetSubscribedItems: 60,
				UGCGetItemState: 61,
				UGCGetItemInstallInfo: 62,
				UGCGetItemDownloadInfo: 63,
				UGCDownloadItem: 64,
				UGCBInitWorkshopForGameServer: 65,
				UGCSuspendDownloads: 66,
				UGCStartPlaytimeTracking: 67,
				UGCStopPlaytimeTracking: 68,
				UGCStopPlaytimeTrackingForAllItems: 69,
				UGCAddDependency: 70,
				UGCRemoveDependency: 71,
				UGCAddAppDependency: 72,
				UGCRemoveAppDependency: 73,
				UGCGetAppDependencies: 74,
				UGCDeleteItem: 75,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION010", used since Steamworks SDK v1.40
		{
			MinVersion: 0x0003005C0048003A, // 03.92.72.58
			NumMethods: 74,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCCreateQueryUGCDetailsRequest: 2,
				UGCSendQueryUGCRequest: 3,
				UGCGetQueryUGCResult: 4,
				UGCGetQueryUGCPreviewURL: 5,
				UGCGetQueryUGCMetadata: 6,
				UGCGetQueryUGCChildren: 7,
				UGCGetQueryUGCStatistic: 8,
				UGCGetQueryUGCNumAdditionalPreviews: 9,
				UGCGetQueryUGCAdditionalPreview: 10,
				UGCGetQueryUGCNumKeyValueTags: 11,
				UGCGetQueryUGCKeyValueTag: 12,
				UGCReleaseQueryUGCRequest: 13,
				UGCAddRequiredTag: 14,
				UGCAddExcludedTag: 15,
				UGCSetReturnOnlyIDs: 16,
				UGCSetReturnKeyValueTags: 17,
				UGCSetReturnLongDescription: 18,
				UGCSetReturnMetadata: 19,
				UGCSetReturnChildren: 20,
				UGCSetReturnAdditionalPreviews: 21,
				UGCSetReturnTotalOnly: 22,
				UGCSetReturnPlaytimeStats: 23,
				UGCSetLanguage: 24,
				UGCSetAllowCachedResponse: 25,
				UGCSetCloudFileNameFilter: 26,
				UGCSetMatchAnyTag: 27,
				UGCSetSearchText: 28,
				UGCSetRankedByTrendDays: 29,
				UGCAddRequiredKeyValueTag: 30,
				UGCRequestUGCDetails: 31,
				UGCCreateItem: 32,
				UGCStartItemUpdate: 33,
				UGCSetItemTitle: 34,
				UGCSetItemDescription: 35,
				UGCSetItemUpdateLanguage: 36,
				UGCSetItemMetadata: 37,
				UGCSetItemVisibility: 38,
				UGCSetItemTags: 39,
				UGCSetItemContent: 40,
				UGCSetItemPreview: 41,
				UGCRemoveItemKeyValueTags: 42,
				UGCAddItemKeyValueTag: 43,
				UGCAddItemPreviewFile: 44,
				UGCAddItemPreviewVideo: 45,
				UGCUpdateItemPreviewFile: 46,
				UGCUpdateItemPreviewVideo: 47,
				UGCRemoveItemPreview: 48,
				UGCSubmitItemUpdate: 49,
				UGCGetItemUpdateProgress: 50,
				UGCSetUserItemVote: 51,
				UGCGetUserItemVote: 52,
				UGCAddItemToFavorites: 53,
				UGCRemoveItemFromFavorites: 54,
				UGCSubscribeItem: 55,
				UGCUnsubscribeItem: 56,
				UGCGetNumSubscribedItems: 57,
				UGCGetSubscribedItems: 58,
				UGCGetItemState: 59,
				UGCGetItemInstallInfo: 60,
				UGCGetItemDownloadInfo: 61,
				UGCDownloadItem: 62,
				UGCBInitWorkshopForGameServer: 63,
				UGCSuspendDownloads: 64,
				UGCStartPlaytimeTracking: 65,
				UGCStopPlaytimeTracking: 66,
				UGCStopPlaytimeTrackingForAllItems: 67,
				UGCAddDependency: 68,
				UGCRemoveDependency: 69,
				UGCAddAppDependency: 70,
				UGCRemoveAppDependency: 71,
				UGCGetAppDependencies: 72,
				UGCDeleteItem: 73,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION009", used since Steamworks SDK v1.38
		{
			MinVersion: 0x0003003E00520052, // 03.62.82.82
			NumMethods: 67,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCCreateQueryUGCDetailsRequest: 2,
				UGCSendQueryUGCRequest: 3,
				UGCGetQueryUGCResult: 4,
				UGCGetQueryUGCPreviewURL: 5,
				UGCGetQueryUGCMetadata: 6,
				UGCGetQueryUGCChildren: 7,
				UGCGetQueryUGCStatistic: 8,
				UGCGetQueryUGCNumAdditionalPreviews: 9,
				UGCGetQueryUGCAdditionalPreview: 10,
				UGCGetQueryUGCNumKeyValueTags: 11,
				UGCGetQueryUGCKeyValueTag: 12,
				UGCReleaseQueryUGCRequest: 13,
				UGCAddRequiredTag: 14,
				UGCAddExcludedTag: 15,
				UGCSetReturnOnlyIDs: 16,
				UGCSetReturnKeyValueTags: 17,
				UGCSetReturnLongDescription: 18,
				UGCSetReturnMetadata: 19,
				UGCSetReturnChildren: 20,
				UGCSetReturnAdditionalPreviews: 21,
				UGCSetReturnTotalOnly: 22,
				UGCSetLanguage: 23,
				UGCSetAllowCachedResponse: 24,
				UGCSetCloudFileNameFilter: 25,
				UGCSetMatchAnyTag: 26,
				UGCSetSearchText: 27,
				UGCSetRankedByTrendDays: 28,
				UGCAddRequiredKeyValueTag: 29,
				UGCRequestUGCDetails: 30,
				UGCCreateItem: 31,
				UGCStartItemUpdate: 32,
				UGCSetItemTitle: 33,
				UGCSetItemDescription: 34,
				UGCSetItemUpdateLanguage: 35,
				UGCSetItemMetadata: 36,
				UGCSetItemVisibility: 37,
				UGCSetItemTags: 38,
				UGCSetItemContent: 39,
				UGCSetItemPreview: 40,
				UGCRemoveItemKeyValueTags: 41,
				UGCAddItemKeyValueTag: 42,
				UGCAddItemPreviewFile: 43,
				UGCAddItemPreviewVideo: 44,
				UGCUpdateItemPreviewFile: 45,
				UGCUpdateItemPreviewVideo: 46,
				UGCRemoveItemPreview: 47,
				UGCSubmitItemUpdate: 48,
				UGCGetItemUpdateProgress: 49,
				UGCSetUserItemVote: 50,
				UGCGetUserItemVote: 51,
				UGCAddItemToFavorites: 52,
				UGCRemoveItemFromFavorites: 53,
				UGCSubscribeItem: 54,
				UGCUnsubscribeItem: 55,
				UGCGetNumSubscribedItems: 56,
				UGCGetSubscribedItems: 57,
				UGCGetItemState: 58,
				UGCGetItemInstallInfo: 59,
				UGCGetItemDownloadInfo: 60,
				UGCDownloadItem: 61,
				UGCBInitWorkshopForGameServer: 62,
				UGCSuspendDownloads: 63,
				UGCStartPlaytimeTracking: 64,
				UGCStopPlaytimeTracking: 65,
				UGCStopPlaytimeTrackingForAllItems: 66,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION008", used in Steamworks SDK v1.37
		{
			MinVersion: 0x0003002A003D0042, // 03.42.61.66
			NumMethods: 63,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCCreateQueryUGCDetailsRequest: 2,
				UGCSendQueryUGCRequest: 3,
				UGCGetQueryUGCResult: 4,
				UGCGetQueryUGCPreviewURL: 5,
				UGCGetQueryUGCMetadata: 6,
				UGCGetQueryUGCChildren: 7,
				UGCGetQueryUGCStatistic: 8,
				UGCGetQueryUGCNumAdditionalPreviews: 9,
				UGCGetQueryUGCAdditionalPreview: 10,
				UGCGetQueryUGCNumKeyValueTags: 11,
				UGCGetQueryUGCKeyValueTag: 12,
				UGCReleaseQueryUGCRequest: 13,
				UGCAddRequiredTag: 14,
				UGCAddExcludedTag: 15,
				UGCSetReturnKeyValueTags: 16,
				UGCSetReturnLongDescription: 17,
				UGCSetReturnMetadata: 18,
				UGCSetReturnChildren: 19,
				UGCSetReturnAdditionalPreviews: 20,
				UGCSetReturnTotalOnly: 21,
				UGCSetLanguage: 22,
				UGCSetAllowCachedResponse: 23,
				UGCSetCloudFileNameFilter: 24,
				UGCSetMatchAnyTag: 25,
				UGCSetSearchText: 26,
				UGCSetRankedByTrendDays: 27,
				UGCAddRequiredKeyValueTag: 28,
				UGCRequestUGCDetails: 29,
				UGCCreateItem: 30,
				UGCStartItemUpdate: 31,
				UGCSetItemTitle: 32,
				UGCSetItemDescription: 33,
				UGCSetItemUpdateLanguage: 34,
				UGCSetItemMetadata: 35,
				UGCSetItemVisibility: 36,
				UGCSetItemTags: 37,
				UGCSetItemContent: 38,
				UGCSetItemPreview: 39,
				UGCRemoveItemKeyValueTags: 40,
				UGCAddItemKeyValueTag: 41,
				UGCAddItemPreviewFile: 42,
				UGCAddItemPreviewVideo: 43,
				UGCUpdateItemPreviewFile: 44,
				UGCUpdateItemPreviewVideo: 45,
				UGCRemoveItemPreview: 46,
				UGCSubmitItemUpdate: 47,
				UGCGetItemUpdateProgress: 48,
				UGCSetUserItemVote: 49,
				UGCGetUserItemVote: 50,
				UGCAddItemToFavorites: 51,
				UGCRemoveItemFromFavorites: 52,
				UGCSubscribeItem: 53,
				UGCUnsubscribeItem: 54,
				UGCGetNumSubscribedItems: 55,
				UGCGetSubscribedItems: 56,
				UGCGetItemState: 57,
				UGCGetItemInstallInfo: 58,
				UGCGetItemDownloadInfo: 59,
				UGCDownloadItem: 60,
				UGCBInitWorkshopForGameServer: 61,
				UGCSuspendDownloads: 62,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION007", used since Steamworks SDK v1.34
		{
			MinVersion: 0x00020059002D0004, // 02.89.45.04
			NumMethods: 58,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCCreateQueryUGCDetailsRequest: 2,
				UGCSendQueryUGCRequest: 3,
				UGCGetQueryUGCResult: 4,
				UGCGetQueryUGCPreviewURL: 5,
				UGCGetQueryUGCMetadata: 6,
				UGCGetQueryUGCChildren: 7,
				UGCGetQueryUGCStatistic: 8,
				UGCGetQueryUGCNumAdditionalPreviews: 9,
				UGCGetQueryUGCAdditionalPreview: 10,
				UGCGetQueryUGCNumKeyValueTags: 11,
				UGCGetQueryUGCKeyValueTag: 12,
				UGCReleaseQueryUGCRequest: 13,
				UGCAddRequiredTag: 14,
				UGCAddExcludedTag: 15,
				UGCSetReturnKeyValueTags: 16,
				UGCSetReturnLongDescription: 17,
				UGCSetReturnMetadata: 18,
				UGCSetReturnChildren: 19,
				UGCSetReturnAdditionalPreviews: 20,
				UGCSetReturnTotalOnly: 21,
				UGCSetLanguage: 22,
				UGCSetAllowCachedResponse: 23,
				UGCSetCloudFileNameFilter: 24,
				UGCSetMatchAnyTag: 25,
				UGCSetSearchText: 26,
				UGCSetRankedByTrendDays: 27,
				UGCAddRequiredKeyValueTag: 28,
				UGCRequestUGCDetails: 29,
				UGCCreateItem: 30,
				UGCStartItemUpdate: 31,
				UGCSetItemTitle: 32,
				UGCSetItemDescription: 33,
				UGCSetItemUpdateLanguage: 34,
				UGCSetItemMetadata: 35,
				UGCSetItemVisibility: 36,
				UGCSetItemTags: 37,
				UGCSetItemContent: 38,
				UGCSetItemPreview: 39,
				UGCRemoveItemKeyValueTags: 40,
				UGCAddItemKeyValueTag: 41,
				UGCSubmitItemUpdate: 42,
				UGCGetItemUpdateProgress: 43,
				UGCSetUserItemVote: 44,
				UGCGetUserItemVote: 45,
				UGCAddItemToFavorites: 46,
				UGCRemoveItemFromFavorites: 47,
				UGCSubscribeItem: 48,
				UGCUnsubscribeItem: 49,
				UGCGetNumSubscribedItems: 50,
				UGCGetSubscribedItems: 51,
				UGCGetItemState: 52,
				UGCGetItemInstallInfo: 53,
				UGCGetItemDownloadInfo: 54,
				UGCDownloadItem: 55,
				UGCBInitWorkshopForGameServer: 56,
				UGCSuspendDownloads: 57,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION005", used in Steamworks SDK v1.33
		{
			MinVersion: 0x0002004D00250052, // 02.77.37.82
			NumMethods: 46,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCCreateQueryUGCDetailsRequest: 2,
				UGCSendQueryUGCRequest: 3,
				UGCGetQueryUGCResult: 4,
				UGCGetQueryUGCPreviewURL: 5,
				UGCGetQueryUGCMetadata: 6,
				UGCGetQueryUGCChildren: 7,
				UGCGetQueryUGCStatistic: 8,
				UGCGetQueryUGCNumAdditionalPreviews: 9,
				UGCGetQueryUGCAdditionalPreview: 10,
				UGCReleaseQueryUGCRequest: 11,
				UGCAddRequiredTag: 12,
				UGCAddExcludedTag: 13,
				UGCSetReturnLongDescription: 14,
				UGCSetReturnMetadata: 15,
				UGCSetReturnChildren: 16,
				UGCSetReturnAdditionalPreviews: 17,
				UGCSetReturnTotalOnly: 18,
				UGCSetAllowCachedResponse: 19,
				UGCSetCloudFileNameFilter: 20,
				UGCSetMatchAnyTag: 21,
				UGCSetSearchText: 22,
				UGCSetRankedByTrendDays: 23,
				UGCRequestUGCDetails: 24,
				UGCCreateItem: 25,
				UGCStartItemUpdate: 26,
				UGCSetItemTitle: 27,
				UGCSetItemDescription: 28,
				UGCSetItemMetadata: 29,
				UGCSetItemVisibility: 30,
				UGCSetItemTags: 31,
				UGCSetItemContent: 32,
				UGCSetItemPreview: 33,
				UGCSubmitItemUpdate: 34,
				UGCGetItemUpdateProgress: 35,
				UGCAddItemToFavorites: 36,
				UGCRemoveItemFromFavorites: 37,
				UGCSubscribeItem: 38,
				UGCUnsubscribeItem: 39,
				UGCGetNumSubscribedItems: 40,
				UGCGetSubscribedItems: 41,
				UGCGetItemState: 42,
				UGCGetItemInstallInfo: 43,
				UGCGetItemDownloadInfo: 44,
				UGCDownloadItem: 45,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION002" and "STEAMUGC_INTERFACE_VERSION003",  used since Steamworks SDK v1.29
		{
			MinVersion: 0x000200130022005D, // 02.19.34.93
			NumMethods: 31,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCSendQueryUGCRequest: 2,
				UGCGetQueryUGCResult: 3,
				UGCReleaseQueryUGCRequest: 4,
				UGCAddRequiredTag: 5,
				UGCAddExcludedTag: 6,
				UGCSetReturnLongDescription: 7,
				UGCSetReturnTotalOnly: 8,
				UGCSetAllowCachedResponse: 9,
				UGCSetCloudFileNameFilter: 10,
				UGCSetMatchAnyTag: 11,
				UGCSetSearchText: 12,
				UGCSetRankedByTrendDays: 13,
				UGCRequestUGCDetails: 14,
				UGCCreateItem: 15,
				UGCStartItemUpdate: 16,
				UGCSetItemTitle: 17,
				UGCSetItemDescription: 18,
				UGCSetItemVisibility: 19,
				UGCSetItemTags: 20,
				UGCSetItemContent: 21,
				UGCSetItemPreview: 22,
				UGCSubmitItemUpdate: 23,
				UGCGetItemUpdateProgress: 24,
				UGCSubscribeItem: 25,
				UGCUnsubscribeItem: 26,
				UGCGetNumSubscribedItems: 27,
				UGCGetSubscribedItems: 28,
				UGCGetItemInstallInfo: 29,
				UGCGetItemUpdateInfo: 30,
			}),
		},
		// "STEAMUGC_INTERFACE_VERSION001"
		{
			MinVersion: 0,
			NumMethods: 14,
			Slots: sparse(NumUGCMethods, map[int]int{
				UGCCreateQueryUserUGCRequest: 0,
				UGCCreateQueryAllUGCRequestPage: 1,
				UGCSendQueryUGCRequest: 2,
				UGCGetQueryUGCResult: 3,
				UGCReleaseQueryUGCRequest: 4,
				UGCAddRequiredTag: 5,
				UGCAddExcludedTag: 6,
				UGCSetReturnLongDescription: 7,
				UGCSetReturnTotalOnly: 8,
				UGCSetCloudFileNameFilter: 9,
				UGCSetMatchAnyTag: 10,
				UGCSetSearchText: 11,
				UGCSetRankedByTrendDays: 12,
				UGCRequestUGCDetails: 13,
			}),
		},
	},
}

var userTable = Table{
	Kind:       KindUser,
	MaxMethods: NumUserMethods,
	Entries: []Entry{
		// "SteamUser023", used since Steamworks SDK v1.57
		{
			MinVersion: 0x000800020015005F, // 08.02.21.95
			NumMethods: 33,
			Slots:      identity(NumUserMethods, 33),
		},
		// "SteamUser021" & "SteamUser022", used since Steamworks SDK v1.49
		{
			MinVersion: 0x0005005C0024004B, // 05.92.36.75
			NumMethods: 32,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetVoiceOptimalSampleRate: 12,
				UserGetAuthSessionTicket: 13,
				UserBeginAuthSession: 14,
				UserEndAuthSession: 15,
				UserCancelAuthTicket: 16,
				UserUserHasLicenseForApp: 17,
				UserBIsBehindNAT: 18,
				UserAdvertiseGame: 19,
				UserRequestEncryptedAppTicket: 20,
				UserGetEncryptedAppTicket: 21,
				UserGetGameBadgeLevel: 22,
				UserGetPlayerSteamLevel: 23,
				UserRequestStoreAuthURL: 24,
				UserBIsPhoneVerified: 25,
				UserBIsTwoFactorEnabled: 26,
				UserBIsPhoneIdentifying: 27,
				UserBIsPhoneRequiringVerification: 28,
				UserGetMarketEligibility: 29,
				UserGetDurationControl: 30,
				UserBSetDurationControlOnlineState: 31,
			}),
		},
		// "SteamUser020", used since Steamworks SDK v1.43
		{
			MinVersion: 0x0004005F0014001E, // 04.95.20.30
			NumMethods: 31,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetVoiceOptimalSampleRate: 12,
				UserGetAuthSessionTicket: 13,
				UserBeginAuthSession: 14,
				UserEndAuthSession: 15,
				UserCancelAuthTicket: 16,
				UserUserHasLicenseForApp: 17,
				UserBIsBehindNAT: 18,
				UserAdvertiseGame: 19,
				UserRequestEncryptedAppTicket: 20,
				UserGetEncryptedAppTicket: 21,
				UserGetGameBadgeLevel: 22,
				UserGetPlayerSteamLevel: 23,
				UserRequestStoreAuthURL: 24,
				UserBIsPhoneVerified: 25,
				UserBIsTwoFactorEnabled: 26,
				UserBIsPhoneIdentifying: 27,
				UserBIsPhoneRequiringVerification: 28,
				UserGetMarketEligibility: 29,
				UserGetDurationControl: 30,
			}),
		},
		// "SteamUser019", used since Steamworks SDK v1.37
		{
			MinVersion: 0x0003002A003D0042, // 03.42.61.66
			NumMethods: 29,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetVoiceOptimalSampleRate: 12,
				UserGetAuthSessionTicket: 13,
				UserBeginAuthSession: 14,
				UserEndAuthSession: 15,
				UserCancelAuthTicket: 16,
				UserUserHasLicenseForApp: 17,
				UserBIsBehindNAT: 18,
				UserAdvertiseGame: 19,
				UserRequestEncryptedAppTicket: 20,
				UserGetEncryptedAppTicket: 21,
				UserGetGameBadgeLevel: 22,
				UserGetPlayerSteamLevel: 23,
				UserRequestStoreAuthURL: 24,
				UserBIsPhoneVerified: 25,
				UserBIsTwoFactorEnabled: 26,
				UserBIsPhoneIdentifying: 27,
				UserBIsPhoneRequiringVerification: 28,
			}),
		},
		// "SteamUser018", used since Steamworks SDK v1.32
		{
			MinVersion: 0x0002003B0033002B, // 02.59.51.43
			NumMethods: 25,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetVoiceOptimalSampleRate: 12,
				UserGetAuthSessionTicket: 13,
				UserBeginAuthSession: 14,
				UserEndAuthSession: 15,
				UserCancelAuthTicket: 16,
				UserUserHasLicenseForApp: 17,
				UserBIsBehindNAT: 18,
				UserAdvertiseGame: 19,
				UserRequestEncryptedAppTicket: 20,
				UserGetEncryptedAppTicket: 21,
				UserGetGameBadgeLevel: 22,
				UserGetPlayerSteamLevel: 23,
				UserRequestStoreAuthURL: 24,
			}),
		},
		// "SteamUser017", used since Steamworks SDK v1.25
		{
			MinVersion: 0x00010053001F0025, // 01.83.31.37
			NumMethods: 24,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetVoiceOptimalSampleRate: 12,
				UserGetAuthSessionTicket: 13,
				UserBeginAuthSession: 14,
				UserEndAuthSession: 15,
				UserCancelAuthTicket: 16,
				UserUserHasLicenseForApp: 17,
				UserBIsBehindNAT: 18,
				UserAdvertiseGame: 19,
				UserRequestEncryptedAppTicket: 20,
				UserGetEncryptedAppTicket: 21,
				UserGetGameBadgeLevel: 22,
				UserGetPlayerSteamLevel: 23,
			}),
		},
		// "SteamUser016", used since Steamworks SDK v1.13
		{
			MinVersion: 0x000100060063003D, // 01.06.99.61
			NumMethods: 22,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetVoiceOptimalSampleRate: 12,
				UserGetAuthSessionTicket: 13,
				UserBeginAuthSession: 14,
				UserEndAuthSession: 15,
				UserCancelAuthTicket: 16,
				UserUserHasLicenseForApp: 17,
				UserBIsBehindNAT: 18,
				UserAdvertiseGame: 19,
				UserRequestEncryptedAppTicket: 20,
				UserGetEncryptedAppTicket: 21,
			}),
		},
		// "SteamUser014", used in older supported Steamworks SDK versions
		{
			MinVersion: 0,
			NumMethods: 21,
			Slots: sparse(NumUserMethods, map[int]int{
				UserGetHSteamUser: 0,
				UserBLoggedOn: 1,
				UserGetSteamID: 2,
				UserInitiateGameConnection: 3,
				UserTerminateGameConnection: 4,
				UserTrackAppUsageEvent: 5,
				UserGetUserDataFolder: 6,
				UserStartVoiceRecording: 7,
				UserStopVoiceRecording: 8,
				UserGetAvailableVoice: 9,
				UserGetVoice: 10,
				UserDecompressVoice: 11,
				UserGetAuthSessionTicket: 12,
				UserBeginAuthSession: 13,
				UserEndAuthSession: 14,
				UserCancelAuthTicket: 15,
				UserUserHasLicenseForApp: 16,
				UserBIsBehindNAT: 17,
				UserAdvertiseGame: 18,
				UserRequestEncryptedAppTicket: 19,
				UserGetEncryptedAppTicket: 20,
			}),
		},
	},
}

var utilsTable = Table{
	Kind:       KindUtils,
	MaxMethods: NumUtilsMethods,
	Entries: []Entry{
		// "SteamUtils010", used since Steamworks SDK v1.50
		{
			MinVersion: 0x000600060063003B, // 06.06.99.59
			NumMethods: 39,
			Slots:      identity(NumUtilsMethods, 39),
		},
		// "SteamUtils009", used since Steamworks SDK v1.40
		{
			MinVersion: 0x0003005C0048003A, // 03.92.72.58
			NumMethods: 34,
			Slots:      identity(NumUtilsMethods, 34),
		},
		// "SteamUtils008", used since Steamworks SDK v1.37
		{
			MinVersion: 0x0003002A003D0042, // 03.42.61.66
			NumMethods: 28,
			Slots:      identity(NumUtilsMethods, 28),
		},
		// "SteamUtils007", used since Steamworks SDK v1.29
		{
			MinVersion: 0x000200130022005D, // 02.19.34.93
			NumMethods: 26,
			Slots:      identity(NumUtilsMethods, 26),
		},
		// "SteamUtils006", used since Steamworks SDK v1.25
		{
			MinVersion: 0x00010053001F0025, // 01.83.31.37
			NumMethods: 25,
			Slots:      identity(NumUtilsMethods, 25),
		},
		// "SteamUtils005", used in older supported Steamworks SDK versions
		{
			MinVersion: 0,
			NumMethods: 23,
			Slots:      identity(NumUtilsMethods, 23),
		},
	},
}
