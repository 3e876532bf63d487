package estimate

import (
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
)

// OptionsResponse is the body of GET /api/options.
type OptionsResponse struct {
	Fields        []plan.FieldSpec     `json:"fields"`
	ExportOptions []share.ExportOption `json:"export_options"`
	Platforms     []share.Platform     `json:"share_platforms"`
}

// EstimateRequest is the body of POST /api/estimate.
type EstimateRequest struct {
	Rooms  string `json:"rooms" form:"rooms"`
	Style  string `json:"style" form:"style"`
	Budget string `json:"budget" form:"budget"`
	Size   string `json:"size" form:"size"`
}

func (r EstimateRequest) Details() plan.Details {
	return plan.Details{Rooms: r.Rooms, Style: r.Style, Budget: r.Budget, Size: r.Size}
}

// EstimateResponse is the body returned by POST /api/estimate.
type EstimateResponse struct {
	plan.Estimate
	Summary string `json:"summary"`
}
