package fx

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/cwbudde/algo-synthfx/dsp/core"
)

// DefaultSlots is the number of slots a rack has unless overridden.
const DefaultSlots = 8

// Off is the effect type of an empty slot.
const Off = "off"

// RackOption mutates rack construction parameters.
type RackOption func(*rackConfig) error

type rackConfig struct {
	slots     int
	processor core.ProcessorConfig
	logger    *slog.Logger
}

// WithSlots sets the number of slots (> 0).
func WithSlots(n int) RackOption {
	return func(cfg *rackConfig) error {
		if n <= 0 {
			return fmt.Errorf("rack slot count must be > 0: %d", n)
		}

		cfg.slots = n

		return nil
	}
}

// WithProcessor sets the processing config effects are built for, usually
// from core.ApplyProcessorOptions.
func WithProcessor(pc core.ProcessorConfig) RackOption {
	return func(cfg *rackConfig) error {
		if !(pc.SampleRate > 0) || math.IsInf(pc.SampleRate, 0) {
			return fmt.Errorf("rack sample rate must be > 0 and finite: %f", pc.SampleRate)
		}

		cfg.processor = pc

		return nil
	}
}

// WithLogger sets the logger for control operations. Processing never logs.
func WithLogger(logger *slog.Logger) RackOption {
	return func(cfg *rackConfig) error {
		if logger == nil {
			return fmt.Errorf("rack logger must not be nil")
		}

		cfg.logger = logger

		return nil
	}
}

type rackSlot struct {
	effectType string
	effect     Effect
	params     *ParamSet
}

func (s rackSlot) empty() bool { return s.effect == nil }

// Rack runs a fixed number of effect slots in series.
//
// Control methods may be called from any goroutine. Process is meant for the
// audio goroutine and never waits: a block that arrives while a control
// method holds the rack passes through unprocessed.
type Rack struct {
	mu        sync.Mutex
	registry  *Registry
	processor core.ProcessorConfig
	slots     []rackSlot
	logger    *slog.Logger
}

// NewRack creates a rack with every slot off.
func NewRack(registry *Registry, opts ...RackOption) (*Rack, error) {
	if registry == nil {
		return nil, fmt.Errorf("rack registry must not be nil")
	}

	cfg := rackConfig{
		slots:     DefaultSlots,
		processor: core.DefaultProcessorConfig(),
		logger:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	slots := make([]rackSlot, cfg.slots)
	for i := range slots {
		slots[i] = emptySlot()
	}

	return &Rack{
		registry:  registry,
		processor: cfg.processor,
		slots:     slots,
		logger:    cfg.logger,
	}, nil
}

// Len returns the number of slots.
func (r *Rack) Len() int { return len(r.slots) }

// SampleRate returns the rate effects are built for.
func (r *Rack) SampleRate() float64 { return r.processor.SampleRate }

// Processor returns the processing config effects are built for.
func (r *Rack) Processor() core.ProcessorConfig { return r.processor }

// Assign builds a new effectType instance at defaults into slot and
// initializes it. Off or an empty type clears the slot.
func (r *Rack) Assign(slot int, effectType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return err
	}

	if effectType == "" || effectType == Off {
		r.slots[slot] = emptySlot()
		r.logger.Info("slot cleared", "slot", slot)

		return nil
	}

	effect, params, err := r.registry.New(effectType, r.processor.SampleRate)
	if err != nil {
		return fmt.Errorf("slot %d: %w", slot, err)
	}

	effect.Init()

	r.slots[slot] = slotOf(effectType, effect, params)
	r.logger.Info("slot assigned", "slot", slot, "effect", effectType)

	return nil
}

// Clear empties slot.
func (r *Rack) Clear(slot int) error {
	return r.Assign(slot, Off)
}

// Move transfers the effect in from to to, replacing what was there, and
// leaves from empty.
func (r *Rack) Move(from, to int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlots(from, to); err != nil {
		return err
	}

	if from == to {
		return nil
	}

	r.slots[to] = r.slots[from]
	r.slots[from] = emptySlot()
	r.logger.Info("slot moved", "from", from, "to", to, "effect", r.slots[to].effectType)

	return nil
}

// Copy puts a new instance of the effect in from into to, with the same
// parameter values. The copy starts from initialized state.
func (r *Rack) Copy(from, to int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlots(from, to); err != nil {
		return err
	}

	if from == to {
		return nil
	}

	src := r.slots[from]
	if src.empty() {
		r.slots[to] = emptySlot()
		r.logger.Info("slot copied", "from", from, "to", to, "effect", Off)

		return nil
	}

	effect, params, err := r.registry.New(src.effectType, r.processor.SampleRate)
	if err != nil {
		return fmt.Errorf("copy slot %d to %d: %w", from, to, err)
	}

	if err := params.CopyFrom(src.params); err != nil {
		return fmt.Errorf("copy slot %d to %d: %w", from, to, err)
	}

	effect.Init()

	r.slots[to] = slotOf(src.effectType, effect, params)
	r.logger.Info("slot copied", "from", from, "to", to, "effect", src.effectType)

	return nil
}

// Swap exchanges the contents of a and b.
func (r *Rack) Swap(a, b int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlots(a, b); err != nil {
		return err
	}

	r.slots[a], r.slots[b] = r.slots[b], r.slots[a]
	r.logger.Info("slots swapped", "a", a, "b", b)

	return nil
}

// Suspend resets the state of the effect in slot.
func (r *Rack) Suspend(slot int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return err
	}

	if s := r.slots[slot]; !s.empty() {
		s.effect.Suspend()
		r.logger.Debug("slot suspended", "slot", slot, "effect", s.effectType)
	}

	return nil
}

// SuspendAll resets the state of every effect.
func (r *Rack) SuspendAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.slots {
		if !s.empty() {
			s.effect.Suspend()
		}
	}

	r.logger.Debug("all slots suspended")
}

// Type returns the effect type in slot, or Off.
func (r *Rack) Type(slot int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return "", err
	}

	return r.slots[slot].effectType, nil
}

// Params returns the parameter set of the effect in slot, or nil for an
// empty slot. The set stays valid after the slot changes and is safe to
// write from any goroutine.
func (r *Rack) Params(slot int) (*ParamSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return nil, err
	}

	return r.slots[slot].params, nil
}

// Effect returns the effect in slot, or nil for an empty slot.
func (r *Rack) Effect(slot int) (Effect, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSlot(slot); err != nil {
		return nil, err
	}

	return r.slots[slot].effect, nil
}

// Process runs left and right through every occupied slot in order.
// It reports ErrBlockSize and leaves the block untouched when either channel
// is not core.BlockSize samples long.
func (r *Rack) Process(left, right []float64) error {
	if !core.IsBlock(left, right) {
		return ErrBlockSize
	}

	if !r.mu.TryLock() {
		return nil
	}
	defer r.mu.Unlock()

	for i := range r.slots {
		if e := r.slots[i].effect; e != nil {
			e.Process(left, right)
		}
	}

	return nil
}

func (r *Rack) checkSlot(slot int) error {
	if slot < 0 || slot >= len(r.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSlotRange, slot, len(r.slots))
	}

	return nil
}

func (r *Rack) checkSlots(a, b int) error {
	if err := r.checkSlot(a); err != nil {
		return err
	}

	return r.checkSlot(b)
}

func emptySlot() rackSlot {
	return rackSlot{effectType: Off}
}

func slotOf(effectType string, effect Effect, params *ParamSet) rackSlot {
	return rackSlot{effectType: effectType, effect: effect, params: params}
}
