package form

import (
	"strconv"
	"strings"
	"time"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
)

const dateLayout = "2006-01-02"

// PropertyDraft backs both AddProperty and EditProperty. Numbers stay as
// typed; the remote API parses them.
type PropertyDraft struct {
	Title            string `form:"title" binding:"required"`
	Price            string `form:"price" binding:"required"`
	Location         string `form:"location" binding:"required"`
	BHK              string `form:"bhk" binding:"required"`
	CarpetArea       string `form:"carpetArea" binding:"required"`
	BuiltUpArea      string `form:"builtUpArea" binding:"required"`
	FurnishingStatus string `form:"furnishingStatus" binding:"required"`
	ReraApproved     bool   `form:"reraApproved"`
	ReraID           string `form:"reraId"`
	Ownership        string `form:"ownership" binding:"required"`
	CompletionStatus string `form:"completionStatus" binding:"required"`
	Builder          string `form:"builder" binding:"required"`
	Amenities        string `form:"amenities"`
	PossessionDate   string `form:"possessionDate"`

	// Staged holds the ids of images uploaded with an earlier, failed submit.
	Staged []string `form:"staged"`
}

func NewPropertyDraft() PropertyDraft {
	return PropertyDraft{
		FurnishingStatus: string(models.Furnished),
		Ownership:        string(models.Freehold),
		CompletionStatus: string(models.ReadyToMove),
	}
}

// DraftFromProperty pre-populates the edit form from a fetched record.
func DraftFromProperty(p models.Property) PropertyDraft {
	return PropertyDraft{
		Title:            p.Title,
		Price:            formatNumber(p.Price),
		Location:         p.Location,
		BHK:              formatBHK(p.BHK),
		CarpetArea:       formatNumber(p.CarpetArea),
		BuiltUpArea:      formatNumber(p.BuiltUpArea),
		FurnishingStatus: string(p.FurnishingStatus),
		ReraApproved:     p.ReraApproved,
		ReraID:           p.ReraID,
		Ownership:        string(p.Ownership),
		CompletionStatus: string(p.CompletionStatus),
		Builder:          p.Builder.ID,
		Amenities:        JoinAmenities(p.Amenities),
		PossessionDate:   FormatDate(p.PossessionDate),
	}
}

func (d PropertyDraft) With(field, value string) PropertyDraft {
	switch field {
	case "title":
		d.Title = value
	case "price":
		d.Price = value
	case "location":
		d.Location = value
	case "bhk":
		d.BHK = value
	case "carpetArea":
		d.CarpetArea = value
	case "builtUpArea":
		d.BuiltUpArea = value
	case "furnishingStatus":
		d.FurnishingStatus = value
	case "reraApproved":
		d.ReraApproved, _ = strconv.ParseBool(value)
	case "reraId":
		d.ReraID = value
	case "ownership":
		d.Ownership = value
	case "completionStatus":
		d.CompletionStatus = value
	case "builder":
		d.Builder = value
	case "amenities":
		d.Amenities = value
	case "possessionDate":
		d.PossessionDate = value
	}
	return d
}

// WithStaged returns a draft whose staged image list is ids.
func (d PropertyDraft) WithStaged(ids []string) PropertyDraft {
	d.Staged = append([]string(nil), ids...)
	return d
}

func (d PropertyDraft) AmenityList() []string {
	return SplitAmenities(d.Amenities)
}

func (d PropertyDraft) Input(images []apiclient.ImageFile) apiclient.PropertyInput {
	return apiclient.PropertyInput{
		Title:            strings.TrimSpace(d.Title),
		Price:            strings.TrimSpace(d.Price),
		Location:         strings.TrimSpace(d.Location),
		BHK:              d.BHK,
		CarpetArea:       strings.TrimSpace(d.CarpetArea),
		BuiltUpArea:      strings.TrimSpace(d.BuiltUpArea),
		FurnishingStatus: d.FurnishingStatus,
		ReraApproved:     d.ReraApproved,
		ReraID:           strings.TrimSpace(d.ReraID),
		Ownership:        d.Ownership,
		CompletionStatus: d.CompletionStatus,
		Builder:          d.Builder,
		Amenities:        d.AmenityList(),
		PossessionDate:   d.PossessionDate,
		Images:           images,
	}
}

// FormatDate renders a stored possession date as YYYY-MM-DD for a date input.
// Unparseable values render empty.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, dateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(dateLayout)
		}
	}
	if len(raw) >= len(dateLayout) {
		if t, err := time.Parse(dateLayout, raw[:len(dateLayout)]); err == nil {
			return t.Format(dateLayout)
		}
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBHK(v int) string {
	return strconv.Itoa(v)
}
