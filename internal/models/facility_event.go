package models

import "time"

// FacilityAction - тип изменения объекта
type FacilityAction string

const (
	FacilityCreated FacilityAction = "created"
	FacilityUpdated FacilityAction = "updated"
	FacilityDeleted FacilityAction = "deleted"
)

// FacilityEvent описывает изменение объекта для внешних подписчиков
type FacilityEvent struct {
	Action    FacilityAction `json:"action"`
	Facility  *Facility      `json:"facility"`
	Timestamp time.Time      `json:"timestamp"`
}
