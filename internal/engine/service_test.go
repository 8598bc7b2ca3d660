package engine

import (
	"context"
	"errors"
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/wilds"
	"testing"
)

func TestService_ProcessCommand(t *testing.T) {
	layout := testLayout(func(b *wilds.WorldBuilder) {
		b.WithItem(domain.ItemWood, domain.Vec3{X: 1})
	})
	cfg := NewConfig()
	cfg.Seed = 1
	s := NewService(cfg, DefaultTuning(), layout, nil)

	if err := s.ProcessCommand(api.ClientCommand{Action: "FLY"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown action err = %v", err)
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: "ADMIN_HEAL"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin err = %v", err)
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: "INTERACT"}); err != nil {
		t.Fatalf("interact: %v", err)
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: "INPUT", Payload: []byte(`{"back":true}`)}); err != nil {
		t.Fatalf("input: %v", err)
	}

	for k := 0; k < 3; k++ {
		s.Tick(0.05)
	}
	snap := s.LastSnapshot()
	if snap.Player.Inventory["wood"] != 1 {
		t.Errorf("inventory = %v, want one wood", snap.Player.Inventory)
	}
	if snap.Player.Pos.Z <= 0 {
		t.Errorf("player did not move: %+v", snap.Player.Pos)
	}
}

func TestService_RunStopsOnCancel(t *testing.T) {
	cfg := NewConfig()
	s := NewService(cfg, DefaultTuning(), testLayout(nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run err = %v, want context.Canceled", err)
	}
}
