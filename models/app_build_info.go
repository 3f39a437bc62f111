// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the metadata stamped into a binary with -ldflags at build
// time. Unset values stay empty.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

// Fields lists the metadata as ordered label/value pairs for display.
func (a AppBuildInfo) Fields() [][2]string {
	return [][2]string{
		{"Version", a.Version},
		{"Date", a.Date},
		{"Commit", a.Commit},
	}
}
