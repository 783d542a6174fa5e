package document

// SectionKind tags the typed sections the rendering engine consumes. The
// order they appear in a Document is fixed by Assemble.
type SectionKind string

const (
	SectionHeader      SectionKind = "header"
	SectionLicenses    SectionKind = "licenses"
	SectionDateTime    SectionKind = "datetime"
	SectionTripInfo    SectionKind = "tripinfo"
	SectionCosts       SectionKind = "costs"
	SectionTotals      SectionKind = "totals"
	SectionAttachments SectionKind = "attachments"
)

// Field is one populated label/value pair. Assemble never emits a Field with
// a blank value.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Company is the identity block printed at the top of the report.
type Company struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	OrgNumber string `json:"orgNumber"`
	LogoPath  string `json:"logoPath,omitempty"`
}

// Header carries the document title and company identity.
type Header struct {
	Title   string  `json:"title"`
	Company Company `json:"company"`
}

// CostBlock is the printable breakdown of a single trip's costs.
type CostBlock struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Section is one typed block of the printable document. Exactly the members
// matching Kind are set.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Title  string      `json:"title,omitempty"`
	Header *Header     `json:"header,omitempty"`
	Rows   [][]Field   `json:"rows,omitempty"`
	Fields []Field     `json:"fields,omitempty"`
	Blocks []CostBlock `json:"blocks,omitempty"`
	Index  []string    `json:"index,omitempty"`
}

// Document is the ordered section sequence handed to the document engine,
// plus the derived export filename.
type Document struct {
	Filename string    `json:"filename"`
	Sections []Section `json:"sections"`
}
