// Package answercache is an explicit, concurrency-safe key/value store for
// parsed answers. Writers call [Cache.Put], [Cache.Invalidate] and
// [Cache.Clear]; every change is published as an [Event] to the channels
// returned by [Cache.Subscribe], so dependent views can refresh without
// polling.
//
// Keys are usually derived from the raw answer with [Key].
package answercache
