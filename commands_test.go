package main

import (
	"testing"

	"derelict/pkg/game/state"
)

func TestOutcomeLine(t *testing.T) {
	tests := []struct {
		name string
		s    state.GameState
		want string
	}{
		{
			name: "victory",
			s:    state.GameState{GameOver: true, Victory: true},
			want: "outcome: data core recovered",
		},
		{
			name: "defeat names the cause",
			s:    state.GameState{GameOver: true, Defeat: "power depleted"},
			want: "outcome: bot lost (power depleted)",
		},
		{
			name: "still running",
			s:    state.GameState{},
			want: "outcome: session still in progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeLine(&tt.s); got != tt.want {
				t.Errorf("outcomeLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
