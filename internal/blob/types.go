// Package blob is the only entry point to the object store backends. Callers
// depend on blob.Store and pick a backend through Open.
package blob

import "storefront/internal/blob/core"

type (
	// Driver identifies a blob backend driver.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory driver behind storage driver memory-objects.
	DriverMemory = core.DriverMemory
)

// ErrNotFound is matched by errors for missing keys.
var ErrNotFound = core.ErrNotFound
