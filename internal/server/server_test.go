package server

import (
	"encoding/json"
	"frostwild-server/internal/domain"
	"frostwild-server/internal/engine"
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/logger"
	"frostwild-server/pkg/wilds"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*engine.GameService, *httptest.Server) {
	t.Helper()
	layout := wilds.NewWorld(rand.New(rand.NewSource(3))).
		WithPlayerStart(domain.Vec3{}).
		WithItem(domain.ItemWood, domain.Vec3{X: 1}).
		Build()
	svc := engine.NewService(engine.NewConfig(), engine.DefaultTuning(), layout, nil)
	ts := httptest.NewServer(New(svc, "0").Handler())
	t.Cleanup(ts.Close)
	return svc, ts
}

func TestServer_Health(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
}

func TestServer_DebugSnapshot(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/debug/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var snap api.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.State != "PLAYING" || len(snap.Items) != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestServer_DebugTuningRoundTrip(t *testing.T) {
	svc, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/debug/tuning")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got engine.Tuning
	if err := yaml.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Director.AssessInterval != svc.Tuning().Director.AssessInterval {
		t.Errorf("assess interval = %v", got.Director.AssessInterval)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("exported tuning invalid: %v", err)
	}
}

func TestServer_WebSocketBridge(t *testing.T) {
	svc, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(api.ClientCommand{Action: "INIT", Token: "render-1"}); err != nil {
		t.Fatal(err)
	}

	// Первый снимок приходит сразу после рукопожатия
	var snap api.Snapshot
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("initial snapshot: %v", err)
	}

	if err := conn.WriteJSON(api.ClientCommand{Action: "INPUT", Payload: json.RawMessage(`{"back":true}`)}); err != nil {
		t.Fatal(err)
	}

	for k := 0; k < 50; k++ {
		for n := 0; n < 3; n++ {
			svc.Tick(0.05)
		}
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&snap); err != nil {
			t.Fatalf("snapshot %d: %v", k, err)
		}
		if snap.Player.Pos.Z > 0 {
			return
		}
	}
	t.Fatalf("input never reached the simulation: %+v", snap.Player.Pos)
}
