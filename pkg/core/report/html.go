package report

import (
	"bytes"
	"fmt"

	"finhealth/pkg/core/indicator"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is configured once; GFM is needed for the indicator table.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// BuildHTML renders the Markdown report to an HTML fragment, for
// embedding in dashboards or mails.
func BuildHTML(a indicator.OverallAssessment) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(BuildMarkdown(a)), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
