// Package store defines the remote persistence boundary: one record per
// user per domain, fetched and upserted as a whole. Implementations live
// under internal/platform; an in-memory fake lives in internal/mocks.
package store
