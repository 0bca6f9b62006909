// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merger wires the CMS addon into a host settings object.
//
// [Merger.Apply] takes the operator options and a partially built
// [settings.Settings] and extends it in one synchronous pass: registration
// lists grow, scalar settings are derived from environment overrides, options
// and defaults, and the language tables are computed from LANGUAGES.
//
// Apply works on a copy and only writes it back into the caller's settings
// when every step succeeded. A missing anchor in a registration list, an
// unreadable template list or an unresolvable route aborts the whole call
// and leaves the settings untouched.
//
// Apply is not idempotent for registration lists: calling it twice registers
// every component twice. Scalar settings are stable across repeated calls.
package merger
