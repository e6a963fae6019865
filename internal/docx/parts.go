package docx

import (
	"time"
)

// Package part names.
const (
	partContentTypes = "[Content_Types].xml"
	partRels         = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partSettings     = "word/settings.xml"
	partCore         = "docProps/core.xml"
	partApp          = "docProps/app.xml"
)

const (
	relBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	ctBase  = "application/vnd.openxmlformats-officedocument."
)

// Abstract numbering ids in word/numbering.xml.
const (
	abstractOrdered = 0
	abstractBullet  = 1
)

func writeContentTypes(x *xmlWriter) error {
	x.header()
	x.start("Types", "xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")
	x.leaf("Default", "Extension", "rels", "ContentType", "application/vnd.openxmlformats-package.relationships+xml")
	x.leaf("Default", "Extension", "xml", "ContentType", "application/xml")
	overrides := []struct{ part, ct string }{
		{partDocument, ctBase + "wordprocessingml.document.main+xml"},
		{partStyles, ctBase + "wordprocessingml.styles+xml"},
		{partNumbering, ctBase + "wordprocessingml.numbering+xml"},
		{partSettings, ctBase + "wordprocessingml.settings+xml"},
		{partCore, "application/vnd.openxmlformats-package.core-properties+xml"},
		{partApp, ctBase + "extended-properties+xml"},
	}
	for _, o := range overrides {
		x.leaf("Override", "PartName", "/"+o.part, "ContentType", o.ct)
	}
	x.end("Types")
	return x.flush()
}

type relationship struct {
	id, typ, target string
}

func writeRelationships(x *xmlWriter, rels []relationship) error {
	x.header()
	x.start("Relationships", "xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")
	for _, r := range rels {
		x.leaf("Relationship", "Id", r.id, "Type", r.typ, "Target", r.target)
	}
	x.end("Relationships")
	return x.flush()
}

func packageRelationships() []relationship {
	return []relationship{
		{"rId1", relBase + "officeDocument", partDocument},
		{"rId2", "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties", partCore},
		{"rId3", relBase + "extended-properties", partApp},
	}
}

func documentRelationships() []relationship {
	return []relationship{
		{"rId1", relBase + "styles", "styles.xml"},
		{"rId2", relBase + "numbering", "numbering.xml"},
		{"rId3", relBase + "settings", "settings.xml"},
	}
}

func writeStylesPart(x *xmlWriter, ss StyleSheet) error {
	x.header()
	x.start("w:styles", "xmlns:w", nsW)

	x.start("w:docDefaults")
	x.start("w:rPrDefault")
	writeRunProperties(x, ss.Body.Font, ss.Body.Size, ss.Body.Bold, false, ss.Body.Color)
	x.end("w:rPrDefault")
	x.leaf("w:pPrDefault")
	x.end("w:docDefaults")

	x.start("w:style", "w:type", "paragraph", "w:default", "1", "w:styleId", StyleNormal)
	x.val("w:name", StyleNormal)
	x.leaf("w:qFormat")
	x.end("w:style")

	for _, p := range ss.Paragraphs {
		x.start("w:style", "w:type", "paragraph", "w:styleId", p.ID)
		x.val("w:name", p.Name)
		if p.BasedOn != "" {
			x.val("w:basedOn", p.BasedOn)
		}
		if p.Next != "" {
			x.val("w:next", p.Next)
		}
		x.leaf("w:qFormat")
		x.start("w:pPr")
		if p.Level > 0 {
			x.leaf("w:keepNext")
		}
		writeSpacing(x, p.Spacing)
		if p.Level > 0 {
			x.val("w:outlineLvl", itoa(p.Level-1))
		}
		x.end("w:pPr")
		writeRunProperties(x, p.Run.Font, p.Run.Size, p.Run.Bold, false, p.Run.Color)
		x.end("w:style")
	}

	x.end("w:styles")
	return x.flush()
}

func writeNumberingPart(x *xmlWriter, ss StyleSheet, lists []ListInstance) error {
	x.header()
	x.start("w:numbering", "xmlns:w", nsW)
	writeAbstractNum(x, abstractOrdered, NumberingReference, ss.Ordered)
	writeAbstractNum(x, abstractBullet, "default-bullet", ss.Bullet)
	for _, l := range lists {
		x.start("w:num", "w:numId", itoa(l.NumID))
		abstract := abstractBullet
		if l.Ordered {
			abstract = abstractOrdered
		}
		x.val("w:abstractNumId", itoa(abstract))
		if l.Ordered {
			start := l.Start
			if start < 1 {
				start = 1
			}
			x.start("w:lvlOverride", "w:ilvl", itoa(l.Level))
			x.val("w:startOverride", itoa(start))
			x.end("w:lvlOverride")
		}
		x.end("w:num")
	}
	x.end("w:numbering")
	return x.flush()
}

func writeAbstractNum(x *xmlWriter, id int, name string, levels []ListLevel) {
	x.start("w:abstractNum", "w:abstractNumId", itoa(id))
	x.val("w:multiLevelType", "hybridMultilevel")
	x.val("w:name", name)
	for i, lvl := range levels {
		x.start("w:lvl", "w:ilvl", itoa(i))
		x.val("w:start", "1")
		x.val("w:numFmt", lvl.Format)
		x.val("w:lvlText", lvl.Text)
		x.val("w:lvlJc", lvl.Align)
		x.start("w:pPr")
		writeIndent(x, lvl.Indent)
		x.end("w:pPr")
		x.end("w:lvl")
	}
	x.end("w:abstractNum")
}

func writeSettingsPart(x *xmlWriter) error {
	x.header()
	x.start("w:settings", "xmlns:w", nsW, "xmlns:m", nsM)
	x.val("w:defaultTabStop", "720")
	x.val("w:characterSpacingControl", "doNotCompress")
	x.start("w:compat")
	x.leaf("w:compatSetting",
		"w:name", "compatibilityMode",
		"w:uri", "http://schemas.microsoft.com/office/word",
		"w:val", "15")
	x.end("w:compat")
	x.start("m:mathPr")
	x.leaf("m:mathFont", "m:val", FontMath)
	x.end("m:mathPr")
	x.end("w:settings")
	return x.flush()
}

func writeCorePart(x *xmlWriter, p Properties) error {
	stamp := p.Created.UTC().Format(time.RFC3339)
	x.header()
	x.start("cp:coreProperties",
		"xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		"xmlns:dc", "http://purl.org/dc/elements/1.1/",
		"xmlns:dcterms", "http://purl.org/dc/terms/",
		"xmlns:dcmitype", "http://purl.org/dc/dcmitype/",
		"xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	if p.Title != "" {
		x.start("dc:title")
		x.text(p.Title)
		x.end("dc:title")
	}
	if p.Creator != "" {
		x.start("dc:creator")
		x.text(p.Creator)
		x.end("dc:creator")
		x.start("cp:lastModifiedBy")
		x.text(p.Creator)
		x.end("cp:lastModifiedBy")
	}
	x.start("dcterms:created", "xsi:type", "dcterms:W3CDTF")
	x.text(stamp)
	x.end("dcterms:created")
	x.start("dcterms:modified", "xsi:type", "dcterms:W3CDTF")
	x.text(stamp)
	x.end("dcterms:modified")
	x.end("cp:coreProperties")
	return x.flush()
}

func writeAppPart(x *xmlWriter, application string) error {
	x.header()
	x.start("Properties", "xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	x.start("Application")
	x.text(application)
	x.end("Application")
	x.end("Properties")
	return x.flush()
}
