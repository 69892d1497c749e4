package kvstore

// Key layout carried over from the mobile app's on-device storage. Every
// per-user record hangs off a username-prefixed key, so users never share
// state by construction.

const CurrentUserKey = "@current_user"

func UserKey(username string) string         { return "@user_" + username }
func ItineraryKey(username string) string    { return "@itinerary_" + username }
func CustomEventsKey(username string) string { return "@custom_events_" + username }
func ExpensesKey(username string) string     { return "@expenses_" + username }
func PastSearchesKey(username string) string { return "@past_searches_" + username }
