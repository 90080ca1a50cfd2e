// Package cache defines the result cache used to memoize tool calls.
//
// Calculators are pure, so identical arguments rendered in the same format
// always produce the same result. Backends live in sub-packages: memcache
// keeps entries in process memory and rediscache shares them through Redis.
package cache
