package form

import (
	"time"

	"bluebook/internal/domain"
	"bluebook/internal/utils"
)

// State is the single mutable aggregate behind one editing session: trip
// metadata, the cost ledger, the selected license bindings and the uploaded
// attachments. Everything the views and the document assembler consume is
// read from here; derived values are recomputed on every read.
type State struct {
	ID          string                  `json:"id"`
	Meta        domain.TripMeta         `json:"meta"`
	Licenses    []domain.LicenseBinding `json:"licenses"`
	Entries     []domain.CostEntry      `json:"entries"`
	Attachments []domain.Attachment     `json:"attachments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a session with creation-time defaults: today's date and a
// single pristine cost entry. The ledger is never empty.
func New(id string) *State {
	now := utils.NowLocal()
	return &State{
		ID:          id,
		Meta:        domain.TripMeta{Date: utils.FormatDate(now)},
		Licenses:    []domain.LicenseBinding{},
		Entries:     []domain.CostEntry{{}},
		Attachments: []domain.Attachment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Reset restores the creation-time defaults, keeping the session id.
func (s *State) Reset() {
	fresh := New(s.ID)
	fresh.CreatedAt = s.CreatedAt
	*s = *fresh
}

func (s *State) touch() {
	s.UpdatedAt = utils.NowLocal()
}

// MetaPatch shallow-merges into TripMeta: nil leaves a field alone, a pointer
// (including to "") overwrites it.
type MetaPatch struct {
	Date          *string           `json:"date"`
	StartTime     *string           `json:"startTime"`
	EndTime       *string           `json:"endTime"`
	BookingNumber *string           `json:"bookingNumber"`
	RouteNumber   *string           `json:"routeNumber"`
	Customer      *string           `json:"customer"`
	PurposeFor    *string           `json:"purposeFor"`
	PurposeVia    *string           `json:"purposeVia"`
	Origin        *string           `json:"origin"`
	Destination   *string           `json:"destination"`
	Reference     *string           `json:"reference"`
	Remark        *string           `json:"remark"`
	Trips         *[]domain.TripLeg `json:"trips"`
}

// PatchMeta applies the patch, preserving all unset fields.
func (s *State) PatchMeta(p MetaPatch) {
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&s.Meta.Date, p.Date)
	apply(&s.Meta.StartTime, p.StartTime)
	apply(&s.Meta.EndTime, p.EndTime)
	apply(&s.Meta.BookingNumber, p.BookingNumber)
	apply(&s.Meta.RouteNumber, p.RouteNumber)
	apply(&s.Meta.Customer, p.Customer)
	apply(&s.Meta.PurposeFor, p.PurposeFor)
	apply(&s.Meta.PurposeVia, p.PurposeVia)
	apply(&s.Meta.Origin, p.Origin)
	apply(&s.Meta.Destination, p.Destination)
	apply(&s.Meta.Reference, p.Reference)
	apply(&s.Meta.Remark, p.Remark)
	if p.Trips != nil {
		s.Meta.Trips = *p.Trips
	}
	s.touch()
}

// SetLicenses replaces the top-level binding set.
func (s *State) SetLicenses(bindings []domain.LicenseBinding) {
	if bindings == nil {
		bindings = []domain.LicenseBinding{}
	}
	s.Licenses = bindings
	s.touch()
}

// ActiveLicenses derives the binding list consumed by the ledger and the
// assembler: per-trip nested bindings flattened and deduplicated by license
// id (first occurrence wins), falling back to the top-level set. Derived on
// every call; the underlying bindings can change between reads.
func (s *State) ActiveLicenses() []domain.LicenseBinding {
	nested := []domain.LicenseBinding{}
	seen := map[string]bool{}
	for _, leg := range s.Meta.Trips {
		for _, b := range leg.Licenses {
			if b.LicenseID == "" || seen[b.LicenseID] {
				continue
			}
			seen[b.LicenseID] = true
			nested = append(nested, b)
		}
	}
	if len(nested) > 0 {
		return nested
	}
	out := make([]domain.LicenseBinding, len(s.Licenses))
	copy(out, s.Licenses)
	return out
}

// AddEntry appends a new cost entry and returns its index. With exactly one
// active license the entry is pre-seeded with it; otherwise license and
// driver fields start blank.
func (s *State) AddEntry() int {
	var e domain.CostEntry
	if active := s.ActiveLicenses(); len(active) == 1 {
		e.LicenseID = active[0].LicenseID
		e.DriverID = active[0].DriverID
		e.DriverName = active[0].DriverName
	}
	s.Entries = append(s.Entries, e)
	s.touch()
	return len(s.Entries) - 1
}

// RemoveEntry removes one entry. Removing the last remaining entry replaces
// it with a fresh empty one so the ledger stays non-empty, mirroring
// ClearEntries.
func (s *State) RemoveEntry(index int) error {
	if index < 0 || index >= len(s.Entries) {
		return domain.NotFoundError{Resource: "kostnadsrad"}
	}
	s.Entries = append(s.Entries[:index], s.Entries[index+1:]...)
	if len(s.Entries) == 0 {
		s.Entries = []domain.CostEntry{{}}
	}
	s.touch()
	return nil
}

// ClearEntries resets the ledger to a single empty entry. There is no
// zero-entry state.
func (s *State) ClearEntries() {
	s.Entries = []domain.CostEntry{{}}
	s.touch()
}

// EntryPatch shallow-merges into one cost entry. Values are stored as given;
// numeric normalization happens on read.
type EntryPatch struct {
	ReceiptNumber *string        `json:"receiptNumber"`
	LicenseID     *string        `json:"licenseId"`
	DriverID      *string        `json:"driverId"`
	DriverName    *string        `json:"driverName"`
	TripPrice     *domain.Amount `json:"tripPrice"`
	WaitingFee    *domain.Amount `json:"waitingFee"`
	TollFee       *domain.Amount `json:"tollFee"`
	FerryFee      *domain.Amount `json:"ferryFee"`
	ExtraFee      *domain.Amount `json:"extraFee"`
	Deductible    *domain.Amount `json:"deductible"`
}

// PatchEntry merges the patch into the entry at index. When exactly one
// binding is active its license is authoritative and cannot be patched away;
// when several are active, selecting a bound license also pulls in its driver
// fields.
func (s *State) PatchEntry(index int, p EntryPatch) error {
	if index < 0 || index >= len(s.Entries) {
		return domain.NotFoundError{Resource: "kostnadsrad"}
	}
	e := &s.Entries[index]

	if p.ReceiptNumber != nil {
		e.ReceiptNumber = *p.ReceiptNumber
	}
	if p.LicenseID != nil {
		e.LicenseID = *p.LicenseID
	}
	if p.DriverID != nil {
		e.DriverID = *p.DriverID
	}
	if p.DriverName != nil {
		e.DriverName = *p.DriverName
	}
	if p.TripPrice != nil {
		e.TripPrice = *p.TripPrice
	}
	if p.WaitingFee != nil {
		e.WaitingFee = *p.WaitingFee
	}
	if p.TollFee != nil {
		e.TollFee = *p.TollFee
	}
	if p.FerryFee != nil {
		e.FerryFee = *p.FerryFee
	}
	if p.Deductible != nil {
		e.Deductible = *p.Deductible
	}
	if p.ExtraFee != nil {
		e.ExtraFee = *p.ExtraFee
	}

	active := s.ActiveLicenses()
	switch {
	case len(active) == 1:
		e.LicenseID = active[0].LicenseID
		e.DriverID = active[0].DriverID
		e.DriverName = active[0].DriverName
	case p.LicenseID != nil:
		for _, b := range active {
			if b.LicenseID == e.LicenseID {
				e.DriverID = b.DriverID
				e.DriverName = b.DriverName
				break
			}
		}
	}

	s.touch()
	return nil
}

// AddAttachments appends files not seen before, deduplicated by
// (name, size, lastModified). Returns how many were actually added.
func (s *State) AddAttachments(files []domain.Attachment) int {
	existing := map[string]bool{}
	for _, a := range s.Attachments {
		existing[a.DedupKey()] = true
	}
	added := 0
	for _, f := range files {
		key := f.DedupKey()
		if existing[key] {
			continue
		}
		existing[key] = true
		s.Attachments = append(s.Attachments, f)
		added++
	}
	if added > 0 {
		s.touch()
	}
	return added
}

// RemoveAttachment removes one attachment by position.
func (s *State) RemoveAttachment(index int) error {
	if index < 0 || index >= len(s.Attachments) {
		return domain.NotFoundError{Resource: "vedlegg"}
	}
	s.Attachments = append(s.Attachments[:index], s.Attachments[index+1:]...)
	s.touch()
	return nil
}

// ClearAttachments removes every attachment.
func (s *State) ClearAttachments() {
	s.Attachments = []domain.Attachment{}
	s.touch()
}

// Ready is the gate for document generation: every entry needs a receipt
// number and a positive trip price. Editing is never blocked by this.
func (s *State) Ready() bool {
	for _, e := range s.Entries {
		if utils.TrimOrEmpty(e.ReceiptNumber) == "" {
			return false
		}
		if e.TripPrice.Value() <= 0 {
			return false
		}
	}
	return true
}

// Totals recomputes the aggregate summary from the current entries.
func (s *State) Totals() domain.TotalsSummary {
	return domain.Summarize(s.Entries)
}
