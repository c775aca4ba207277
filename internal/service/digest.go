package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/okuzmina/standup_bot/internal/domain"
)

// FormatDigest renders the summary email for a finished standup. Reports are
// concatenated verbatim in arrival order; nothing is reordered, deduplicated
// or truncated. Month and day are not zero-padded.
func FormatDigest(teamName string, date time.Time, reports []domain.Report) (subject, body string) {
	subject = fmt.Sprintf("Standup for %s [%d-%d-%d]", teamName, date.Year(), int(date.Month()), date.Day())

	var b strings.Builder
	b.WriteString(subject)
	b.WriteString("\n\n")
	for _, r := range reports {
		fmt.Fprintf(&b, "- %s:\n\"%s\"\n\n\n", r.Member, r.Text)
	}
	return subject, b.String()
}
