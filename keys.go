package condcache

import (
	"math"
	"time"
)

// Logical keys are built per resource class so mutations elsewhere in the
// app can target a whole family with InvalidateByPrefix (e.g. everything
// under PrefixStats after posting a new position).

const (
	PrefixChatLog      = "chatlog:"
	PrefixUserChats    = "chats:"
	PrefixChattingList = "chatting:"
	PrefixStats        = "stats:"
	PrefixProfile      = "profile:"
	PrefixDemographics = "demographics:"
	PrefixSettings     = "settings:"
)

func KeyChatLog(chatID string) string      { return PrefixChatLog + chatID }
func KeyUserChats(userID string) string    { return PrefixUserChats + userID }
func KeyChattingList(userID string) string { return PrefixChattingList + userID }
func KeyStats(location, category string) string {
	return PrefixStats + location + ":" + category
}
func KeyProfile(userID string) string      { return PrefixProfile + userID }
func KeyDemographics(userID string) string { return PrefixDemographics + userID }
func KeySettings(userID string) string     { return PrefixSettings + userID }
func KeyCategories() string                { return "categories" }

// MaxAge sentinels.
const (
	// NeverStale: age never triggers revalidation. For immutable resources
	// (ended chat logs, the category list). Explicit Invalidate still works.
	NeverStale = time.Duration(math.MaxInt64)

	// AlwaysStale: every read revalidates. For live resources.
	AlwaysStale = time.Duration(0)
)

// Per-resource-class freshness windows.
const (
	MaxAgeEndedChatLog  = NeverStale
	MaxAgeActiveChatLog = AlwaysStale
	MaxAgeUserChats     = 30 * time.Second
	MaxAgeChattingList  = AlwaysStale
	MaxAgeStats         = 10 * time.Minute
	MaxAgeProfile       = 5 * time.Minute
	MaxAgeDemographics  = time.Hour
	MaxAgeSettings      = 5 * time.Minute
	MaxAgeCategories    = NeverStale
)
