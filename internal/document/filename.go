package document

import (
	"strings"

	"bluebook/internal/domain"
	"bluebook/internal/utils"
)

// MakeFilename derives the export filename:
// "DD-MM-YYYY-<license ids joined by _>-<first driver name, underscored>.pdf",
// or "DD-MM-YYYY-uten-loyve.pdf" when no license is bound. The date comes
// from the trip metadata, falling back to today.
func MakeFilename(meta domain.TripMeta, licenses []domain.LicenseBinding) string {
	day := utils.NowLocal()
	if t, err := utils.ParseDate(meta.Date); err == nil {
		day = t
	}
	dateStr := utils.FormatDateDMY(day)

	if len(licenses) == 0 {
		return dateStr + "-uten-loyve.pdf"
	}

	nums := make([]string, 0, len(licenses))
	for _, b := range licenses {
		nums = append(nums, utils.SafeFilenamePart(b.LicenseID))
	}

	name := utils.SafeFilenamePart(strings.Join(strings.Fields(licenses[0].DriverName), "_"))
	if name == "" {
		name = "uten-navn"
	}

	return dateStr + "-" + strings.Join(nums, "_") + "-" + name + ".pdf"
}
