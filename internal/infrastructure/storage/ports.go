package storage

import (
	catalogapp "github.com/bizledger/backend/internal/application/catalog"
	hrapp "github.com/bizledger/backend/internal/application/hr"
)

// Compile-time checks that the S3 backend satisfies the application-layer
// storage ports.
var (
	_ catalogapp.ObjectStorageService = (*S3ObjectStorage)(nil)
	_ hrapp.ObjectStorageService      = (*S3ObjectStorage)(nil)
)
