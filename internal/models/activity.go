package models

import "time"

type ActivityAction string

const (
	ActivityLogin           ActivityAction = "login"
	ActivityLogout          ActivityAction = "logout"
	ActivityBuilderCreated  ActivityAction = "builder.created"
	ActivityPropertyCreated ActivityAction = "property.created"
	ActivityPropertyUpdated ActivityAction = "property.updated"
	ActivityPropertyDeleted ActivityAction = "property.deleted"
)

// Activity is one admin action recorded by the console.
type Activity struct {
	ID        string
	AdminID   string
	AdminName string
	Action    ActivityAction
	TargetID  string
	Summary   string
	CreatedAt time.Time
}
