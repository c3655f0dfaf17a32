package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Welcome is the template name published by the registration flow.
const Welcome = "welcome"

var welcomeHTML = template.Must(template.New(Welcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif">
    <h2>Welcome to DevConnector{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Your account is ready. Set up your developer profile and start
    connecting with other developers.</p>
  </body>
</html>`))

// Render renders a named template into subject, text and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case Welcome:
		var buf bytes.Buffer
		if err := welcomeHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		name, _ := data["Name"].(string)
		text = "Welcome to DevConnector"
		if name != "" {
			text = "Welcome to DevConnector, " + name
		}
		return "Welcome to DevConnector", text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
