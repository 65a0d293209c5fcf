// internal/playback/state_test.go
package playback

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateStopped, false},
		{StatePlaying, true},
		{StatePaused, true},
	}
	for _, tt := range tests {
		if got := tt.state.IsActive(); got != tt.want {
			t.Errorf("%v.IsActive() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusLoading, "Loading"},
		{StatusReady, "Ready"},
		{StatusNoTracks, "NoTracks"},
		{Status(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSnapshot_ControlsEnabled(t *testing.T) {
	if (Snapshot{Status: StatusLoading}).ControlsEnabled() {
		t.Error("controls enabled while loading")
	}
	if (Snapshot{Status: StatusNoTracks}).ControlsEnabled() {
		t.Error("controls enabled without tracks")
	}
	if !(Snapshot{Status: StatusReady}).ControlsEnabled() {
		t.Error("controls disabled when ready")
	}
}
