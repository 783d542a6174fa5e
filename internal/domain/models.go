package domain

import "fmt"

// LicenseBinding is one taxi license (løyve) and the driver currently
// operating it. Driver fields may come from the driver registry or free text.
type LicenseBinding struct {
	LicenseID  string `json:"licenseId"`
	DriverID   string `json:"driverId"`
	DriverName string `json:"driverName"`
}

// CostEntry is one trip's billable amounts. Monetary fields keep the raw
// user input (see Amount); validation is presentational only.
type CostEntry struct {
	ReceiptNumber string `json:"receiptNumber"`
	LicenseID     string `json:"licenseId,omitempty"`
	DriverID      string `json:"driverId,omitempty"`
	DriverName    string `json:"driverName,omitempty"`

	TripPrice  Amount `json:"tripPrice"`
	WaitingFee Amount `json:"waitingFee"`
	TollFee    Amount `json:"tollFee"`
	FerryFee   Amount `json:"ferryFee"`
	ExtraFee   Amount `json:"extraFee"`
	Deductible Amount `json:"deductible"`
}

// TripLeg carries an optional per-trip license selection. Older form
// snapshots nest bindings here instead of on the top-level set; the active
// list is derived by flattening these first.
type TripLeg struct {
	Licenses []LicenseBinding `json:"licenses,omitempty"`
}

// TripMeta is the trip metadata block. Customer, Origin and Destination are
// the only mandatory fields; everything else is optional and omitted from the
// rendered document when blank.
type TripMeta struct {
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime,omitempty"`
	EndTime       string    `json:"endTime,omitempty"`
	BookingNumber string    `json:"bookingNumber,omitempty"`
	RouteNumber   string    `json:"routeNumber,omitempty"`
	Customer      string    `json:"customer"`
	PurposeFor    string    `json:"purposeFor,omitempty"`
	PurposeVia    string    `json:"purposeVia,omitempty"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Reference     string    `json:"reference,omitempty"`
	Remark        string    `json:"remark,omitempty"`
	Trips         []TripLeg `json:"trips,omitempty"`
}

// Clone returns a copy that shares nothing with the receiver. The nested
// per-trip license slices are the only reference fields.
func (m TripMeta) Clone() TripMeta {
	out := m
	if m.Trips != nil {
		out.Trips = make([]TripLeg, len(m.Trips))
		for i, leg := range m.Trips {
			out.Trips[i] = TripLeg{Licenses: append([]LicenseBinding(nil), leg.Licenses...)}
		}
	}
	return out
}

// Attachment is one uploaded file plus its raw bytes. Normalized previews are
// produced separately and keyed back by position in the upload order.
type Attachment struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	MimeType     string `json:"mimeType"`
	SizeBytes    int64  `json:"sizeBytes"`
	LastModified int64  `json:"lastModified"`

	Data []byte `json:"-"`
}

// DedupKey identifies a file across repeated uploads.
func (a Attachment) DedupKey() string {
	return fmt.Sprintf("%s|%d|%d", a.DisplayName, a.SizeBytes, a.LastModified)
}

// TotalsSummary is derived fresh from the cost entries on every read.
type TotalsSummary struct {
	TaxableSubtotal    float64 `json:"taxableSubtotal"`
	NonTaxableSubtotal float64 `json:"nonTaxableSubtotal"`
	VATAmount          float64 `json:"vatAmount"`
	DeductibleSubtotal float64 `json:"deductibleSubtotal"`
	NetTotal           float64 `json:"netTotal"`
	GrossTotal         float64 `json:"grossTotal"`
}
