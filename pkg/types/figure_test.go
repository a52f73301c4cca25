package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFigureRecordValidate(t *testing.T) {
	valid := FigureRecord{Exercise: "04-power-and-log", File: "04-power-and-log-1.svg", Seq: 1, Format: "svg"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *FigureRecord)
	}{
		{"missing exercise", func(r *FigureRecord) { r.Exercise = "" }},
		{"missing file", func(r *FigureRecord) { r.File = "" }},
		{"zero seq", func(r *FigureRecord) { r.Seq = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), ErrInvalidRecord)
		})
	}
}
