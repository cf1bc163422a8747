package geometry

import "testing"

func TestLabels(t *testing.T) {
	tests := []struct {
		name string
		comp Component
		want string
	}{
		{"named nose", NoseCone{Name: "pointy"}, "pointy"},
		{"unnamed nose", NoseCone{}, "nosecone"},
		{"unnamed tube", BodyTube{}, "body_tube"},
		{"unnamed fairing", PayloadFairing{}, "payload_fairing"},
		{"unnamed fins", FinSet{}, "fin_set"},
		{"unnamed irregular", IrregularBody{}, "irregular_body"},
		{"named fins", FinSet{Name: "aft fins"}, "aft fins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.comp.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
