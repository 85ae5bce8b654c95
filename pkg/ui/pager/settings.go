package pager

import (
	"github.com/macropower/doodles/pkg/paging"
)

// Settings tunes the pager's animation and indicator.
type Settings struct {
	// RubberBand lets a drag pull the strip past the first or last page.
	RubberBand *bool `json:"rubberBand,omitempty" jsonschema:"title=Rubber Band"`
	// ActiveMarker is drawn for the current page.
	ActiveMarker string `json:"activeMarker,omitempty" jsonschema:"title=Active Marker"`
	// InactiveMarker is drawn for every other page.
	InactiveMarker string `json:"inactiveMarker,omitempty" jsonschema:"title=Inactive Marker"`
	// MarkerGap is the number of cells between markers.
	MarkerGap *int `json:"markerGap,omitempty" jsonschema:"title=Marker Gap,minimum=0"`
	// FPS is the frame rate of the snap animation.
	FPS int `json:"fps,omitempty" jsonschema:"title=FPS,minimum=1,maximum=240"`
	// Frequency is the angular frequency of the snap spring.
	Frequency float64 `json:"frequency,omitempty" jsonschema:"title=Frequency,exclusiveMinimum=0"`
	// Damping is the damping ratio of the snap spring.
	Damping float64 `json:"damping,omitempty" jsonschema:"title=Damping,exclusiveMinimum=0"`
	// InitialPage is the page shown when a pager opens.
	InitialPage int `json:"initialPage,omitempty" jsonschema:"title=Initial Page,minimum=0"`
}

func (s *Settings) EnsureDefaults() {
	ind := paging.DefaultIndicator()

	if s.RubberBand == nil {
		rb := true
		s.RubberBand = &rb
	}
	if s.ActiveMarker == "" {
		s.ActiveMarker = ind.Active
	}
	if s.InactiveMarker == "" {
		s.InactiveMarker = ind.Inactive
	}
	if s.MarkerGap == nil {
		gap := ind.Gap
		s.MarkerGap = &gap
	}
	if s.FPS <= 0 {
		s.FPS = paging.DefaultFPS
	}
	if s.Frequency <= 0 {
		s.Frequency = paging.DefaultFrequency
	}
	if s.Damping <= 0 {
		s.Damping = paging.DefaultDamping
	}
}

// Indicator returns the indicator described by the settings.
func (s *Settings) Indicator() paging.Indicator {
	return paging.Indicator{
		Active:   s.ActiveMarker,
		Inactive: s.InactiveMarker,
		Gap:      *s.MarkerGap,
	}
}
