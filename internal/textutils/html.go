// Package textutils provides text extraction and manipulation utilities
// shared by the resolvers and the classifier.
package textutils

import (
	"strings"

	"golang.org/x/net/html"
)

// skippedElements are HTML elements whose text content carries no receipt
// signal and is dropped entirely.
var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

// blockElements start a new line in the extracted text so that line-oriented
// heuristics (header section, per-line totals) keep working on HTML email.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true,
	"table": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "section": true, "article": true,
}

// HTMLToText converts an HTML email body to normalized plain text. Parsing
// never fails on malformed markup; the tokenizer consumes whatever it can.
func HTMLToText(source string) string {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		// html.Parse only errors on reader failure; a string reader cannot.
		return CollapseWhitespace(source)
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			sb.WriteString("\n")
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			sb.WriteString("\n")
		}
	}
	walk(doc)

	return NormalizeLines(sb.String())
}
