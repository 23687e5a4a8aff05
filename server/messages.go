package server

import (
	"github.com/va6996/tripmate/agents"
	"github.com/va6996/tripmate/catalog"
	"github.com/va6996/tripmate/plugins/weather"
)

const TripServiceName = "tripmate.v1.TripService"

const (
	ChatProcedure            = "/" + TripServiceName + "/Chat"
	CheckAttractionProcedure = "/" + TripServiceName + "/CheckAttraction"
	ListAttractionsProcedure = "/" + TripServiceName + "/ListAttractions"
	GetWeatherProcedure      = "/" + TripServiceName + "/GetWeather"
)

type ChatRequest struct {
	Message string        `json:"message"`
	Mode    string        `json:"mode,omitempty"`
	History []agents.Turn `json:"history,omitempty"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	Mode      string `json:"mode"`
	RequestID string `json:"request_id"`
}

type CheckAttractionRequest struct {
	Attraction string `json:"attraction"`
	Date       string `json:"date,omitempty"`
}

// CheckAttractionResponse reports Found=false with ValidIDs for an unknown
// attraction instead of failing the call.
type CheckAttractionResponse struct {
	Found       bool                `json:"found"`
	Status      string              `json:"status,omitempty"`
	Attraction  *catalog.Attraction `json:"attraction,omitempty"`
	Alternative *catalog.Attraction `json:"alternative,omitempty"`
	ValidIDs    []string            `json:"valid_ids,omitempty"`
	Text        string              `json:"text"`
}

type ListAttractionsRequest struct{}

type ListAttractionsResponse struct {
	Currency    string               `json:"currency"`
	Attractions []catalog.Attraction `json:"attractions"`
}

type GetWeatherRequest struct {
	Date string `json:"date"`
}

type GetWeatherResponse struct {
	Report weather.Report `json:"report"`
	Text   string         `json:"text"`
}
