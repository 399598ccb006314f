// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the listkit command-line interface using Cobra.
// Commands load text files into the containers of core/list, run one
// operation and print or write the result. Saved lists go through
// internal/store. CLI code stays thin; the container logic lives in core.
package cli
