package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-feed/models"
)

// RenderSession shows the outcome of a registration or login.
func RenderSession(resp models.AuthResponse, tokenFile string) string {
	var b strings.Builder
	b.WriteString(resp.Msg)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Name: %s\n", resp.User.Name)
	fmt.Fprintf(&b, "Email: %s\n", resp.User.Email)
	fmt.Fprintf(&b, "ID: %s", resp.User.ID)

	hint := ""
	if tokenFile != "" {
		hint = "session saved to " + tokenFile
	}
	return renderPage("SESSION", b.String(), hint)
}

// RenderError boxes an error message.
func RenderError(err error) string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + err.Error())
}
