// Package steamclient talks to a Steam CM endpoint to refresh the runtime's
// DLC list and to drive Steam Workshop item installation.
//
// The refresh flow mirrors what the Steam client itself does: connect,
// anonymous sign-in, request a PICS access token for the title, fetch its
// product info, read the DLC id list from the appinfo VDF, then fetch
// product info for ids the settings do not know yet and take their display
// names. Discovered DLC is appended to the settings and persisted.
//
// Every network step runs under a 2.5 second budget and the whole refresh is
// abandoned after 10 seconds; failure at any point leaves the settings
// untouched. Initialization never blocks on this package beyond those
// budgets.
package steamclient
