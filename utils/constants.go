// File: utils/constants.go
package utils

import "time"

// DraftCachePrefix is the prefix used for Redis booking draft keys.
const DraftCachePrefix = "draft:"

// SearchCachePrefix is the prefix used for Redis search session keys.
const SearchCachePrefix = "search:"

// DefaultDraftTTL is the time-to-live for an idle booking draft.
const DefaultDraftTTL = 30 * time.Minute
