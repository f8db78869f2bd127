package fedex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// successSeverities are the notification severities FedEx uses for replies
// that carry usable data.
var successSeverities = map[string]bool{
	"SUCCESS": true,
	"WARNING": true,
	"NOTE":    true,
}

var prefixedTag = regexp.MustCompile(`<(/?)[A-Za-z_][\w.\-]*:`)

// StripNamespacePrefixes removes "prefix:" from every start and end tag so the
// reply can be traversed by local names. Attributes are left alone.
func StripNamespacePrefixes(raw string) string {
	return prefixedTag.ReplaceAllString(raw, "<$1")
}

// readReply parses raw and checks that the root element is rootTag in the
// ns prefix ("" for unprefixed documents).
func readReply(raw, rootTag, ns string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", domain.ErrBadResponse)
	}
	if root.Tag != rootTag || root.Space != ns {
		return nil, fmt.Errorf("%w: expected root %s, got %s", domain.ErrBadResponse, qualify(ns, rootTag), root.FullTag())
	}
	return root, nil
}

type replyStatus struct {
	success bool
	message string
}

// readStatus looks at the first Notifications element below root. A reply
// without notifications is not successful and has no message.
func readStatus(root *etree.Element, ns string) replyStatus {
	n := root.SelectElement(qualify(ns, "Notifications"))
	if n == nil {
		return replyStatus{}
	}
	severity := childText(n, ns, "Severity")
	return replyStatus{
		success: successSeverities[severity],
		message: fmt.Sprintf("%s - %s: %s", severity, childText(n, ns, "Code"), childText(n, ns, "Message")),
	}
}

func qualify(ns, tag string) string {
	if ns == "" {
		return tag
	}
	return ns + ":" + tag
}

// childText returns the trimmed text of the first child named tag, or "".
func childText(e *etree.Element, ns, tag string) string {
	if e == nil {
		return ""
	}
	if c := e.SelectElement(qualify(ns, tag)); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// pathText returns the trimmed text at a relative path, or "".
func pathText(e *etree.Element, path string) string {
	if c := e.FindElement(path); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

var credentialElement = regexp.MustCompile(`<((?:[\w.\-]+:)?(?:Key|Password))>[^<]*</`)

// RedactCredentials blanks the API key and password in a request document so
// it can be logged or stored.
func RedactCredentials(doc string) string {
	return credentialElement.ReplaceAllString(doc, "<$1>[REDACTED]</")
}
