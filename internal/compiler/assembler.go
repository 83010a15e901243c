package compiler

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

// DefaultProductName is used in the document header when none is configured.
const DefaultProductName = "ChatAds"

// Separator frames every section header and the document header.
var Separator = strings.Repeat("=", 80)

// AssemblerConfig controls section rendering.
type AssemblerConfig struct {
	ProductName string
	// IncludeDescriptions adds a DESCRIPTION line to sections whose front
	// matter carries one.
	IncludeDescriptions bool
}

// Assembler renders extracted documents into the compiled output text.
type Assembler struct {
	product      string
	descriptions bool
}

// NewAssembler builds an Assembler, defaulting the product name.
func NewAssembler(cfg AssemblerConfig) *Assembler {
	product := strings.TrimSpace(cfg.ProductName)
	if product == "" {
		product = DefaultProductName
	}
	return &Assembler{product: product, descriptions: cfg.IncludeDescriptions}
}

// Header renders the document preamble stating how many pages were compiled.
func (a *Assembler) Header(count int) string {
	var b strings.Builder
	b.WriteString(a.product + " Documentation\n")
	b.WriteString("Generated for Support Chatbot Context\n")
	b.WriteString(Separator + "\n\n")
	b.WriteString("This file contains the complete " + a.product +
		" documentation compiled from " + strconv.Itoa(count) + " pages.\n")
	b.WriteString("Use this as context when answering user questions about " + a.product + ".\n\n")
	return b.String()
}

// Section renders one document: framed SECTION and SOURCE lines, a blank
// line, the cleaned body, and a trailing newline.
func (a *Assembler) Section(doc *interfaces.ExtractedDocument) string {
	var b strings.Builder
	b.Grow(len(doc.CleanedBody) + 256)
	b.WriteString(Separator + "\n")
	b.WriteString("SECTION: " + doc.Title + "\n")
	b.WriteString("SOURCE: " + doc.RelativePath + "\n")
	if a.descriptions && doc.FrontMatter.Description != "" {
		b.WriteString("DESCRIPTION: " + doc.FrontMatter.Description + "\n")
	}
	b.WriteString(Separator + "\n\n")
	b.WriteString(doc.CleanedBody)
	b.WriteString("\n")
	return b.String()
}

// Assemble renders the header and one section per document, keeping the
// given order.
func (a *Assembler) Assemble(docs []*interfaces.ExtractedDocument) *interfaces.CompiledOutput {
	sections := make([]string, 0, len(docs))
	for _, doc := range docs {
		sections = append(sections, a.Section(doc))
	}
	return &interfaces.CompiledOutput{
		Header:    a.Header(len(docs)),
		Sections:  sections,
		Documents: docs,
	}
}
