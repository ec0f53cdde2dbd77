package ingest

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "address, article, br, blockquote, dd, div, dl, dt, figcaption, footer, " +
	"h1, h2, h3, h4, h5, h6, header, hr, li, ol, p, pre, section, table, td, th, tr, ul"

// plainText strips markup from feed fields and collapses whitespace. Block
// boundaries become spaces so adjacent paragraphs do not run together.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find(blockElements).AfterHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " ")
}
