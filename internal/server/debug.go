package server

import (
	"encoding/json"
	"frostwild-server/internal/engine"
	"net/http"

	"gopkg.in/yaml.v3"
)

// DebugHandler отдает копии внутреннего состояния. Все данные берутся из последнего
// опубликованного снимка, поэтому цикл симуляции не блокируется.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/snapshot", h.handleSnapshot)
	mux.HandleFunc("/debug/director", h.handleDirector)
	mux.HandleFunc("/debug/tuning", h.handleTuning)
}

// /debug/snapshot - последний снимок мира в том виде, в каком его видит рендер
func (h *DebugHandler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.LastSnapshot())
}

// /debug/director - кулдауны, флаги и последний анализ директора
func (h *DebugHandler) handleDirector(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.DirectorState())
}

// /debug/tuning - действующий баланс. YAML можно сохранить и передать через -tuning.
func (h *DebugHandler) handleTuning(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/yaml")

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(h.Service.Tuning()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	enc.Close()
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (локальный debug-клиент)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("null"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
