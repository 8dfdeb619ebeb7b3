package email

import (
	"bytes"
	"html/template"
)

func leadSubject(n LeadNotification) string {
	if n.Kind == "viewing" {
		if n.ListingTitle != "" {
			return "Viewing request: " + n.ListingTitle
		}
		return "New viewing request"
	}
	return "New contact request"
}

var leadTemplate = template.Must(template.New("lead").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #0f172a;">
  <h2 style="margin-bottom: 4px;">{{if eq .Kind "viewing"}}Viewing request{{else}}Contact request{{end}}</h2>
  <p style="color: #64748b; margin-top: 0;">Reference {{.Reference}}</p>
  <table cellpadding="4">
    <tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
    {{if .ListingTitle}}<tr><td><strong>Listing</strong></td><td>{{.ListingTitle}}, {{.ListingLocation}}</td></tr>{{end}}
  </table>
  {{if .Message}}<p style="white-space: pre-wrap;">{{.Message}}</p>{{end}}
</body>
</html>`))

func renderLeadNotification(n LeadNotification) (string, error) {
	var buf bytes.Buffer
	if err := leadTemplate.Execute(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
