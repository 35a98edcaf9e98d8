// pkg/input/input_test.go
package input

import (
	"sort"
	"testing"
)

func TestState_Handle(t *testing.T) {
	t.Run("press_inserts", func(t *testing.T) {
		s := NewState()
		s.Handle(Event{Key: KeyLeft, Pressed: true})
		if !s.Held(KeyLeft) {
			t.Error("KeyLeft not held after press")
		}
	})

	t.Run("release_removes", func(t *testing.T) {
		s := NewState()
		s.Handle(Event{Key: KeyLeft, Pressed: true})
		s.Handle(Event{Key: KeyLeft, Pressed: false})
		if s.Held(KeyLeft) {
			t.Error("KeyLeft held after release")
		}
	})

	t.Run("repeat_press_is_idempotent", func(t *testing.T) {
		s := NewState()
		s.Handle(Event{Key: KeyFire, Pressed: true})
		s.Handle(Event{Key: KeyFire, Pressed: true})
		s.Handle(Event{Key: KeyFire, Pressed: false})
		if s.Held(KeyFire) {
			t.Error("KeyFire held after release following repeated presses")
		}
	})

	t.Run("release_of_unheld_key_is_harmless", func(t *testing.T) {
		s := NewState()
		s.Handle(Event{Key: KeyDown, Pressed: false})
		if len(s.Intents()) != 0 {
			t.Errorf("got %d intents from an empty set", len(s.Intents()))
		}
	})
}

func TestState_Intents(t *testing.T) {
	tests := []struct {
		name string
		held []Key
		want []Intent
	}{
		{
			name: "empty",
			held: nil,
			want: nil,
		},
		{
			name: "single_key",
			held: []Key{KeyUp},
			want: []Intent{Thrust},
		},
		{
			name: "thrust_and_turn_together",
			held: []Key{KeyLeft, KeyUp},
			want: []Intent{TurnLeft, Thrust},
		},
		{
			name: "opposing_turns_both_emit",
			held: []Key{KeyLeft, KeyRight},
			want: []Intent{TurnLeft, TurnRight},
		},
		{
			name: "all_keys",
			held: []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyFire, KeyQuit},
			want: []Intent{TurnLeft, TurnRight, Thrust, Reverse, Fire, Quit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for _, key := range tt.held {
				s.Handle(Event{Key: key, Pressed: true})
			}

			got := s.Intents()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d intents, expected %d", len(got), len(tt.want))
			}
			// Intent order across held keys is unspecified.
			sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
			want := append([]Intent(nil), tt.want...)
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("intent[%d] = %v, expected %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyLeft, "left"},
		{KeyRight, "right"},
		{KeyUp, "up"},
		{KeyDown, "down"},
		{KeyFire, "fire"},
		{KeyQuit, "quit"},
		{Key(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, expected %q", tt.key, got, tt.want)
		}
	}
}
