// Package models defines the value objects exchanged between the extraction
// core and its callers: input documents and extraction/classification results.
package models

// Document is the unit of input for extraction and classification. It carries
// normalized plain text plus the optional email/file metadata that arrived
// with it. Documents are created once by the collaborator that fetched the
// content and consumed read-only; the core never mutates or persists them.
type Document struct {
	// Text is the normalized plain-text body (PDF-extracted or HTML-derived).
	Text string
	// Subject is the email subject line, if the document came from an email.
	Subject string
	// Sender is the email From address, if known.
	Sender string
	// Filename is the original attachment or upload name. The core itself
	// never reads it; the engine's filename fallback strategy does.
	Filename string
	// HTMLSource holds the raw HTML body when the plain text was derived
	// from an HTML email. Kept for debugging, never matched against.
	HTMLSource string
	// Date is the transport-level date header, used only for fingerprinting.
	Date string
	// MessageID is the email Message-ID header, used only for fingerprinting.
	MessageID string
}
