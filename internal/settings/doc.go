// Package settings models the host framework's settings object as a typed
// struct and provides the list primitives used to register components in it.
//
// Every setting the CMS addon reads or writes has an explicit field carrying
// the framework's key name as its YAML tag. Keys the addon does not know
// about are captured in [Settings.Extra] and survive a load/write round trip.
//
// Registration lists (installed apps, middleware, loaders, finders) are plain
// []string values. [Append], [Prepend] and [InsertBefore] are the only ways
// the merger touches them; [InsertBefore] reports a missing anchor as an
// [*AnchorError] and leaves the list unchanged.
package settings
