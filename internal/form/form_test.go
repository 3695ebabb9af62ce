package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/models"
)

func TestSplitAmenities(t *testing.T) {
	assert.Equal(t, []string{"Pool", "Gym", "Club House"}, SplitAmenities(" Pool,Gym , ,Club House,"))
	assert.Empty(t, SplitAmenities(""))
	assert.Empty(t, SplitAmenities(" , "))
}

func TestAmenitiesRoundTrip(t *testing.T) {
	list := []string{"Pool", "Gym", "Power Backup"}
	assert.Equal(t, "Pool, Gym, Power Backup", JoinAmenities(list))
	assert.Equal(t, list, SplitAmenities(JoinAmenities(list)))
}

func TestLoginDraftWithIsImmutable(t *testing.T) {
	d := LoginDraft{}
	next := d.With("username", "root").With("password", "pw")

	assert.Equal(t, LoginDraft{}, d)
	assert.Equal(t, LoginDraft{Username: "root", Password: "pw"}, next)
	assert.Equal(t, LoginDraft{Username: "root"}, next.Redacted())
	assert.Equal(t, next, next.With("unknown", "x"))
}

func TestBuilderDraft(t *testing.T) {
	d := BuilderDraft{}.
		With("name", "Acme").
		With("description", "Towers").
		With("contactEmail", "a@acme.test").
		With("phoneNumber", "555")

	assert.Equal(t, apiclient.CreateBuilderInput{
		Name:         "Acme",
		Description:  "Towers",
		ContactEmail: "a@acme.test",
		PhoneNumber:  "555",
	}, d.Input())
}

func TestNewPropertyDraftDefaults(t *testing.T) {
	d := NewPropertyDraft()
	assert.Equal(t, "Furnished", d.FurnishingStatus)
	assert.Equal(t, "Freehold", d.Ownership)
	assert.Equal(t, "Ready to move", d.CompletionStatus)
	assert.False(t, d.ReraApproved)
}

func TestPropertyDraftWith(t *testing.T) {
	base := NewPropertyDraft()
	next := base.With("title", "Sea View").With("reraApproved", "true").With("bhk", "3")

	assert.Empty(t, base.Title)
	assert.False(t, base.ReraApproved)
	assert.Equal(t, "Sea View", next.Title)
	assert.True(t, next.ReraApproved)
	assert.Equal(t, "3", next.BHK)

	staged := next.WithStaged([]string{"img1"})
	assert.Empty(t, next.Staged)
	assert.Equal(t, []string{"img1"}, staged.Staged)
}

func TestDraftFromProperty(t *testing.T) {
	p := models.Property{
		ID:               "p1",
		Title:            "Sea View",
		Price:            4500000,
		Location:         "Goa",
		BHK:              3,
		CarpetArea:       1200.5,
		BuiltUpArea:      1400,
		FurnishingStatus: models.SemiFurnished,
		ReraApproved:     true,
		ReraID:           "RERA-1",
		Ownership:        models.Leasehold,
		CompletionStatus: models.NewLaunch,
		Builder:          models.BuilderRef{ID: "b1", Name: "Acme"},
		Amenities:        []string{"Pool", "Gym"},
		PossessionDate:   "2025-06-01T00:00:00.000Z",
	}

	d := DraftFromProperty(p)
	assert.Equal(t, PropertyDraft{
		Title:            "Sea View",
		Price:            "4500000",
		Location:         "Goa",
		BHK:              "3",
		CarpetArea:       "1200.5",
		BuiltUpArea:      "1400",
		FurnishingStatus: "Semi-Furnished",
		ReraApproved:     true,
		ReraID:           "RERA-1",
		Ownership:        "Leasehold",
		CompletionStatus: "New Launch",
		Builder:          "b1",
		Amenities:        "Pool, Gym",
		PossessionDate:   "2025-06-01",
	}, d)

	in := d.Input(nil)
	assert.Equal(t, []string{"Pool", "Gym"}, in.Amenities)
	assert.Equal(t, "b1", in.Builder)
	assert.True(t, in.ReraApproved)
}

func TestDraftFromPropertyKeepsZeroNumbers(t *testing.T) {
	d := DraftFromProperty(models.Property{ID: "p1", Title: "Plot", Price: 0, BuiltUpArea: 0})

	assert.Equal(t, "0", d.Price)
	assert.Equal(t, "0", d.BuiltUpArea)
	assert.Equal(t, "0", d.CarpetArea)
	assert.Equal(t, "0", d.BHK)
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"":                         "",
		"2025-06-01":               "2025-06-01",
		"2025-06-01T00:00:00Z":     "2025-06-01",
		"2025-06-01T00:00:00.000Z": "2025-06-01",
		"2025-06-01 garbage":       "2025-06-01",
		"not a date":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDate(in), in)
	}
}
