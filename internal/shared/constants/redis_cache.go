package constants

import "time"

// Redis Cache Configuration
// This file centralizes all Redis keys and TTL values for the venue plan service
// Pattern: venueplan:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_MEDIUM     = 12 * time.Hour // templates rarely change
	TTL_SEMI_STATIC_LONG  = 4 * time.Hour  // saved layouts
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour  // template listings
	TTL_DRAFT_DEFAULT     = 7 * 24 * time.Hour
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "venueplan"
)

// ================== LAYOUTS MODULE ==================

// Layout Cache Keys
const (
	// Canonical persisted layout of an event
	CACHE_KEY_EVENT_LAYOUT = CACHE_PREFIX + ":layouts:event:" // + event-id

	// Autosaved, not yet persisted editor state
	CACHE_KEY_LAYOUT_DRAFT = CACHE_PREFIX + ":drafts:event:" // + event-id
)

// Layout Cache TTLs
const (
	TTL_EVENT_LAYOUT = TTL_SEMI_STATIC_LONG // 4 hours
	TTL_LAYOUT_DRAFT = TTL_DRAFT_DEFAULT    // 7 days
)

// ================== TEMPLATES MODULE ==================

// Template Cache Keys
const (
	CACHE_KEY_LAYOUT_TEMPLATES = CACHE_PREFIX + ":templates:list"
	CACHE_KEY_LAYOUT_TEMPLATE  = CACHE_PREFIX + ":templates:uuid:" // + template-id
)

// Template Cache TTLs
const (
	TTL_LAYOUT_TEMPLATES = TTL_SEMI_STATIC_SHORT // 1 hour
	TTL_LAYOUT_TEMPLATE  = TTL_STATIC_MEDIUM     // 12 hours
)

// ================== RATE LIMITING ==================

const (
	CACHE_KEY_RATELIMIT = CACHE_PREFIX + ":ratelimit:" // + ip:route-class
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_TEMPLATES_ALL = CACHE_PREFIX + ":templates:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildEventLayoutKey(eventID string) string {
	return CACHE_KEY_EVENT_LAYOUT + eventID
}

func BuildLayoutDraftKey(eventID string) string {
	return CACHE_KEY_LAYOUT_DRAFT + eventID
}

func BuildLayoutTemplateKey(templateID string) string {
	return CACHE_KEY_LAYOUT_TEMPLATE + templateID
}

func BuildRateLimitKey(clientIP, class string) string {
	return CACHE_KEY_RATELIMIT + clientIP + ":" + class
}

/*
INVALIDATION EXAMPLES:

1. When a layout is saved or imported:
   - Invalidate: venueplan:layouts:event:eventID

2. When a template is created:
   - Invalidate: venueplan:templates:*
*/
