// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-feed/models"
)

// RenderBuildInfo shows the binary's build metadata.
func RenderBuildInfo(appName string, info models.AppBuildInfo) string {
	lines := []string{"Application: " + appName}
	for _, field := range info.Fields() {
		lines = append(lines, field[0]+": "+valueOrNA(field[1]))
	}

	return renderPage("BUILD INFO", strings.Join(lines, "\n"), "")
}
