package models

import (
	"encoding/json"
	"strings"
	"time"
)

type ScheduleUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ScheduleProperty struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// Schedule is a site visit booked by a user. The console only displays it.
type Schedule struct {
	ID        string            `json:"_id"`
	User      *ScheduleUser     `json:"userId"`
	Property  *ScheduleProperty `json:"PropertyId"`
	VisitDate time.Time         `json:"visitDate"`
	VisitTime string            `json:"visitTime"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"createdAt"`
}

// UnmarshalJSON decodes the dates leniently: a date the console cannot parse
// is left zero instead of failing the whole list.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	type plain Schedule
	var doc struct {
		plain
		VisitDate json.RawMessage `json:"visitDate"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*s = Schedule(doc.plain)
	s.VisitDate = parseLooseTime(doc.VisitDate)
	s.CreatedAt = parseLooseTime(doc.CreatedAt)
	return nil
}

var looseTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseLooseTime(raw json.RawMessage) time.Time {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return time.Time{}
	}
	value = strings.TrimSpace(value)
	for _, layout := range looseTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (s Schedule) Identifier() string {
	return s.ID
}

func (s Schedule) UserName() string {
	if s.User == nil {
		return ""
	}
	return s.User.Name
}

func (s Schedule) UserEmail() string {
	if s.User == nil {
		return ""
	}
	return s.User.Email
}

func (s Schedule) PropertyTitle() string {
	if s.Property == nil {
		return ""
	}
	return s.Property.Title
}

func (s Schedule) PropertyLocation() string {
	if s.Property == nil {
		return ""
	}
	return s.Property.Location
}
