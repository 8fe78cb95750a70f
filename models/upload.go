// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Upload is a file received from a multipart form, before normalization.
type Upload struct {
	// Filename is the client-supplied name; only its extension is used.
	Filename string

	Data []byte
}
