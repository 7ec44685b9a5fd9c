// Package types provides common type definitions for the flagcomp library.
// This file contains constants for all translation keys used throughout the library.
package types

// Prefix for all flagcomp translation keys
const (
	PrefixKey = "flagcomp"
)

const (
	GroupPrefixKey   = PrefixKey + ".group"
	MessagePrefixKey = PrefixKey + ".msg"
)

// Group headers, in display priority order
const (
	GroupModuleKey     = GroupPrefixKey + ".module"
	GroupPackageKey    = GroupPrefixKey + ".package"
	GroupCommonKey     = GroupPrefixKey + ".common"
	GroupSubpackageKey = GroupPrefixKey + ".subpackage"
	GroupOtherKey      = GroupPrefixKey + ".other"
)

// UIMessages contains keys for completion listing messages
const (
	MsgRemainingHiddenKey = MessagePrefixKey + ".remaining_hidden"
	MsgDetailsForKey      = MessagePrefixKey + ".details_for"
	MsgDefinedKey         = MessagePrefixKey + ".defined"
)

// Flag descriptions registered by the completion support itself
const (
	FlagCompletionWordKey    = PrefixKey + ".flag.tab_completion_word"
	FlagCompletionColumnsKey = PrefixKey + ".flag.tab_completion_columns"
)
