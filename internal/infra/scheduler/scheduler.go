// Package scheduler keeps an in-process registry of reminder rules and
// delivers their notices when due. Rules are addressed by deterministic keys,
// so a later cancellation can remove a rule without any lookup table.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
)

const defaultTick = 30 * time.Second

type rule struct {
	key    string
	fireAt time.Time
	repeat time.Duration
	notice lifecycle.NoticeIntent
}

// Scheduler периодически проверяет зарегистрированные правила и доставляет
// напоминания, срок которых наступил
type Scheduler struct {
	notifier Notifier
	logger   Logger
	tick     time.Duration
	now      func() time.Time

	mu    sync.Mutex
	rules map[string]*rule

	stopCh chan struct{}
}

// New создает планировщик с заданным интервалом проверки
func New(notifier Notifier, logger Logger, tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = defaultTick
	}
	return &Scheduler{
		notifier: notifier,
		logger:   logger,
		tick:     tick,
		now:      time.Now,
		rules:    make(map[string]*rule),
		stopCh:   make(chan struct{}),
	}
}

// Schedule регистрирует правило; правило с тем же ключом замещается
func (s *Scheduler) Schedule(intent lifecycle.ScheduleIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules[intent.RuleKey] = &rule{
		key:    intent.RuleKey,
		fireAt: intent.FireAt,
		repeat: intent.Repeat,
		notice: intent.Notice,
	}
}

// Cancel удаляет правило по ключу; отсутствие правила не является ошибкой
func (s *Scheduler) Cancel(ruleKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rules, ruleKey)
}

// Len возвращает количество зарегистрированных правил
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rules)
}

// Start запускает фоновую проверку правил
func (s *Scheduler) Start() {
	go s.loop()
}

// Stop останавливает фоновую проверку
func (s *Scheduler) Stop() {
	close(s.stopCh)
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.fire(s.now())
		}
	}
}

// fire доставляет все правила, срок которых наступил.
// Одноразовые правила удаляются до доставки, периодические переносятся
// на следующий интервал.
func (s *Scheduler) fire(now time.Time) {
	s.mu.Lock()
	var due []*rule
	for key, r := range s.rules {
		if r.fireAt.After(now) {
			continue
		}
		due = append(due, r)
		if r.repeat > 0 {
			r.fireAt = r.fireAt.Add(r.repeat)
		} else {
			delete(s.rules, key)
		}
	}
	s.mu.Unlock()

	for _, r := range due {
		if err := s.notifier.Send(context.Background(), r.notice); err != nil {
			s.logger.Error("Scheduler: failed to deliver reminder: rule_key=%s, error=%v", r.key, err)
			continue
		}
		s.logger.Info("Scheduler: reminder delivered: rule_key=%s, type=%s", r.key, r.notice.Type)
	}
}
