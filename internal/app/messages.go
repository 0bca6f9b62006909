// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the cmsconfig command line: it resolves the options,
// loads the settings document, runs the merger and writes the result.
//
// All Msg* constants are the messages the CLI writes into log entries.
// Keeping them in one place ensures consistent wording across commands.
package app

const (
	// MsgConfigLoaded is logged once the option sources have been merged.
	MsgConfigLoaded = "configuration loaded"

	// MsgSettingsLoaded is logged after the base settings document is read.
	MsgSettingsLoaded = "settings loaded"

	// MsgSettingsWritten is logged after the composed settings are written.
	MsgSettingsWritten = "settings written"

	// MsgSettingsValid is logged by the validate command on success.
	MsgSettingsValid = "settings are valid"

	// MsgRunFailed is logged by main when a command returns an error.
	MsgRunFailed = "cmsconfig failed"
)
