// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package store keeps named list snapshots in a SQL database through Bun and
// exports them as zstd-compressed JSON backups. It only sees a list through
// its exported surface (ToArray, Kind, AllowsDuplicates, Add); the container
// itself knows nothing about storage.
package store
