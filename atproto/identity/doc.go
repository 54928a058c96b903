/*
Package identity resolves atproto handles to DIDs.

The main abstraction is the HandleResolver interface. Implementations can be nested, somewhat like HTTP middleware,
to add caching or observability: an APIResolver asks a PDS or AppView over XRPC, a CacheResolver keeps results
in process, and redisdir.RedisResolver shares them between processes.
*/
package identity
