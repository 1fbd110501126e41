package util

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveID(t *testing.T) {
	known := []string{"step-1", "step-2", "step-10", "review-basics"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "exact match",
			input: "step-2",
			want:  "step-2",
		},
		{
			name:  "exact match wins over prefix matches",
			input: "step-1",
			want:  "step-1",
		},
		{
			name:  "unique prefix",
			input: "rev",
			want:  "review-basics",
		},
		{
			name:  "unique longer prefix",
			input: "step-10",
			want:  "step-10",
		},
		{
			name:    "ambiguous prefix",
			input:   "step",
			wantErr: ErrAmbiguousID,
		},
		{
			name:    "no match",
			input:   "quiz-1",
			wantErr: ErrNotFound,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveID(tc.input, known, "step")

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ResolveID(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveID(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ResolveID(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestResolveID_AmbiguousListsCandidates(t *testing.T) {
	known := []string{"step-1", "step-2", "step-3"}

	_, err := ResolveID("step", known, "step")
	if !errors.Is(err, ErrAmbiguousID) {
		t.Fatalf("error = %v, want ErrAmbiguousID", err)
	}
	if !strings.Contains(err.Error(), "step-1") || !strings.Contains(err.Error(), "step-3") {
		t.Errorf("error %q should list the candidates", err.Error())
	}
}

func TestResolveID_CapsCandidateList(t *testing.T) {
	known := []string{"s-1", "s-2", "s-3", "s-4", "s-5", "s-6", "s-7"}

	_, err := ResolveID("s-", known, "step")
	if !errors.Is(err, ErrAmbiguousID) {
		t.Fatalf("error = %v, want ErrAmbiguousID", err)
	}
	if strings.Contains(err.Error(), "s-6") {
		t.Errorf("error %q should cap the candidate list at %d", err.Error(), MaxAmbiguousCandidates)
	}
	if !strings.Contains(err.Error(), "matches 7 steps") {
		t.Errorf("error %q should report the full match count", err.Error())
	}
}
