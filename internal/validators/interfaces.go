// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// service layer.
//
// Each rule violation is reported as one of the sentinel errors in
// errors.go; the HTTP layer maps those sentinels to client-facing messages.
// Checks run in a fixed order and stop at the first failure.
package validators

import "context"

// Validator validates an arbitrary request value.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
