package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type FurnishingStatus string

const (
	Furnished     FurnishingStatus = "Furnished"
	SemiFurnished FurnishingStatus = "Semi-Furnished"
	Unfurnished   FurnishingStatus = "Unfurnished"
)

var FurnishingStatuses = []FurnishingStatus{Furnished, SemiFurnished, Unfurnished}

func (f FurnishingStatus) IsValid() bool {
	for _, v := range FurnishingStatuses {
		if f == v {
			return true
		}
	}
	return false
}

type Ownership string

const (
	Freehold           Ownership = "Freehold"
	Leasehold          Ownership = "Leasehold"
	CooperativeSociety Ownership = "Co-operative Society"
	PowerOfAttorney    Ownership = "Power of Attorney"
)

var Ownerships = []Ownership{Freehold, Leasehold, CooperativeSociety, PowerOfAttorney}

func (o Ownership) IsValid() bool {
	for _, v := range Ownerships {
		if o == v {
			return true
		}
	}
	return false
}

type CompletionStatus string

const (
	UnderConstruction CompletionStatus = "Under-construction"
	ReadyToMove       CompletionStatus = "Ready to move"
	NewLaunch         CompletionStatus = "New Launch"
)

var CompletionStatuses = []CompletionStatus{UnderConstruction, ReadyToMove, NewLaunch}

func (c CompletionStatus) IsValid() bool {
	for _, v := range CompletionStatuses {
		if c == v {
			return true
		}
	}
	return false
}

// BHKOptions are the bedroom counts offered by the property forms.
var BHKOptions = []int{1, 2, 3, 4, 5, 6}

type PropertyImage struct {
	URL string `json:"url"`
}

// BuilderRef is the property's non-owning link to a builder. The API sends
// either the bare builder id or the populated builder document.
type BuilderRef struct {
	ID   string
	Name string
}

func (b *BuilderRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = BuilderRef{}
		return nil
	}

	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*b = BuilderRef{ID: id}
		return nil
	}

	var doc struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode builder ref: %w", err)
	}
	*b = BuilderRef{ID: doc.ID, Name: doc.Name}
	return nil
}

// MarshalJSON writes the populated form when the name is known, so cached
// lists keep showing it.
func (b BuilderRef) MarshalJSON() ([]byte, error) {
	if b.Name == "" {
		return json.Marshal(b.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{b.ID, b.Name})
}

type Property struct {
	ID               string           `json:"_id"`
	Title            string           `json:"title"`
	Price            float64          `json:"price"`
	Location         string           `json:"location"`
	BHK              int              `json:"bhk"`
	CarpetArea       float64          `json:"carpetArea"`
	BuiltUpArea      float64          `json:"builtUpArea"`
	FurnishingStatus FurnishingStatus `json:"furnishingStatus"`
	ReraApproved     bool             `json:"reraApproved"`
	ReraID           string           `json:"reraId,omitempty"`
	Ownership        Ownership        `json:"ownership"`
	CompletionStatus CompletionStatus `json:"completionStatus"`
	Builder          BuilderRef       `json:"builder"`
	Amenities        []string         `json:"amenities"`
	PossessionDate   string           `json:"possessionDate,omitempty"`
	Images           []PropertyImage  `json:"images"`
}

func (p Property) Identifier() string {
	return p.ID
}

// CoverURL is the first image, used as the card thumbnail.
func (p Property) CoverURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

func (p Property) BuilderName() string {
	if p.Builder.Name == "" {
		return "Unknown"
	}
	return p.Builder.Name
}
