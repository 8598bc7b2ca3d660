package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frostwild-server/internal/domain"
	"frostwild-server/internal/engine/handlers"
	"frostwild-server/internal/engine/handlers/actions"
	"frostwild-server/internal/engine/handlers/admin"
	"frostwild-server/internal/network"
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/logger"
	"frostwild-server/pkg/wilds"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrQueueFull     = errors.New("command queue is full")
	ErrForbidden     = errors.New("admin commands are disabled")
)

// Command - внутренняя команда, прошедшая разбор
type Command struct {
	Action  domain.ActionType
	Token   string
	Payload json.RawMessage
}

// GameService владеет Instance в одной горутине симуляции.
// Снаружи доступны только очередь команд и копия последнего снимка.
type GameService struct {
	Hub *network.Broadcaster

	cfg      Config
	tun      Tuning
	instance *Instance
	commands chan Command
	handlers map[domain.ActionType]handlers.HandlerFunc

	mu       sync.RWMutex
	last     api.Snapshot
	director DirectorState

	logger *logrus.Entry
}

func NewService(cfg Config, tun Tuning, layout wilds.Layout, journal Journal) *GameService {
	s := &GameService{
		Hub:      network.NewBroadcaster(),
		cfg:      cfg,
		tun:      tun,
		instance: NewInstance(layout, cfg.Seed, tun, journal),
		commands: make(chan Command, 256),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		logger:   logger.Log.WithFields(logrus.Fields{"component": "game_service"}),
	}
	s.registerHandlers()
	s.publish()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionInput] = handlers.WithPayload(actions.HandleInput)
	s.handlers[domain.ActionAttack] = handlers.WithEmptyPayload(actions.HandleAttack)
	s.handlers[domain.ActionInteract] = handlers.WithEmptyPayload(actions.HandleInteract)
	s.handlers[domain.ActionCraft] = handlers.WithPayload(actions.HandleCraft)
	s.handlers[domain.ActionPlace] = handlers.WithEmptyPayload(actions.HandlePlace)

	s.handlers[domain.ActionAdminVitals] = handlers.WithPayload(admin.HandleVitals)
	s.handlers[domain.ActionAdminSpawn] = handlers.WithPayload(admin.HandleSpawn)
	s.handlers[domain.ActionAdminHeal] = handlers.WithEmptyPayload(admin.HandleHeal)
}

// Tuning возвращает действующий баланс (только чтение)
func (s *GameService) Tuning() Tuning { return s.tun }

// ProcessCommand принимает команду от внешнего мира (WebSocket, автопилот).
// Никогда не блокирует: если очередь полна, команда отклоняется.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) error {
	if err := externalCmd.Validate(); err != nil {
		return err
	}
	action := domain.ParseAction(externalCmd.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("%w: %s", ErrUnknownAction, externalCmd.Action)
	}
	if action.IsAdmin() && !s.cfg.Admin {
		return ErrForbidden
	}

	select {
	case s.commands <- Command{Action: action, Token: externalCmd.Token, Payload: externalCmd.Payload}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run крутит симуляцию с частотой TickRateHz, пока жив ctx
func (s *GameService) Run(ctx context.Context) error {
	rate := s.tun.Sim.TickRateHz
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	s.logger.WithField("tick_rate", rate).Info("Game loop started")
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Game loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Tick - один кадр: сначала накопившиеся команды, затем шаг мира, затем (по расписанию) снимок.
func (s *GameService) Tick(dt float64) {
	s.drainCommands()
	s.instance.Step(dt)

	every := uint64(s.tun.Sim.SnapshotEvery)
	if every == 0 || s.instance.Tick%every == 0 {
		s.publish()
	}
}

func (s *GameService) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			s.executeCommand(cmd)
		default:
			return
		}
	}
}

// executeCommand выполняет хендлер и пишет лог результата
func (s *GameService) executeCommand(cmd Command) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{Session: s.instance, Token: cmd.Token}
	result, err := handler(ctx, cmd.Payload)

	fields := logrus.Fields{"action": cmd.Action, "token": cmd.Token, "tick": s.instance.Tick}
	if err != nil {
		s.logger.WithFields(fields).WithError(err).Warn("Command rejected")
		return
	}
	if result.Msg != "" {
		s.logger.WithFields(fields).WithField("type", result.MsgType).Debug(result.Msg)
	}
}

// publish рассылает снимок и обновляет копию для отладочных эндпоинтов
func (s *GameService) publish() {
	snap := s.instance.BuildSnapshot()
	director := s.instance.Director.State()

	s.mu.Lock()
	s.last = snap
	s.director = director
	s.mu.Unlock()

	s.Hub.Broadcast(snap)
}

// LastSnapshot - последний разосланный снимок
func (s *GameService) LastSnapshot() api.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// DirectorState - состояние директора на момент последнего снимка
func (s *GameService) DirectorState() DirectorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.director
}
