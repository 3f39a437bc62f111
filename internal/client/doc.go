// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the feed.
//
// It parses subcommands, keeps the session token in a file between
// invocations and renders server answers through package tui.
package client
