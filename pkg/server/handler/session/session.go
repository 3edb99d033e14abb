/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package session

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"

	"k8s.io/utils/ptr"
)

var (
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrInvalidParameters = errors.New("invalid session parameters")
)

// Battery temperature is clamped to what the car would report before
// derating or refusing to charge.
const (
	MinTemperatureC = -10
	MaxTemperatureC = 70
)

// State is the charging state of the EVSE.
type State string

const (
	Idle     State = "idle"
	Charging State = "charging"
	Paused   State = "paused"
)

// Parameters describe the simulated car and charger.
type Parameters struct {
	// Charging starts a session immediately.
	Charging bool `yaml:"charging"`
	// PowerKW is the power drawn while charging.
	PowerKW float64 `yaml:"powerKW"`
	// AmbientTemperatureC is where the battery temperature starts, and
	// returns to when not charging.
	AmbientTemperatureC float64 `yaml:"ambientTemperatureC"`
	// HeatingRateCPerHour is how fast the battery warms while charging,
	// and cools while not.
	HeatingRateCPerHour float64 `yaml:"heatingRateCPerHour"`
}

// Validate rejects parameters that would make telemetry run backwards.
func (p *Parameters) Validate() error {
	if p.PowerKW < 0 || math.IsNaN(p.PowerKW) || math.IsInf(p.PowerKW, 0) {
		return fmt.Errorf("%w: powerKW %v must be a non-negative number", ErrInvalidParameters, p.PowerKW)
	}

	if p.HeatingRateCPerHour < 0 || math.IsNaN(p.HeatingRateCPerHour) || math.IsInf(p.HeatingRateCPerHour, 0) {
		return fmt.Errorf("%w: heatingRateCPerHour %v must be a non-negative number", ErrInvalidParameters, p.HeatingRateCPerHour)
	}

	if math.IsNaN(p.AmbientTemperatureC) {
		return fmt.Errorf("%w: ambientTemperatureC must be a number", ErrInvalidParameters)
	}

	return nil
}

// Session integrates energy, charging time and battery temperature over
// wall time.
type Session struct {
	lock sync.Mutex

	params Parameters
	clock  func() time.Time

	state        State
	updated      time.Time
	energyKWh    float64
	chargingTime time.Duration
	temperatureC float64
}

// New returns a session. A nil clock uses time.Now.
func New(params Parameters, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}

	s := &Session{
		params:       params,
		clock:        clock,
		state:        Idle,
		updated:      clock(),
		temperatureC: clamp(params.AmbientTemperatureC),
	}

	if params.Charging {
		s.state = Charging
	}

	return s
}

func clamp(t float64) float64 {
	return math.Max(MinTemperatureC, math.Min(MaxTemperatureC, t))
}

// advance brings the integrated values up to date.
func (s *Session) advance() {
	now := s.clock()

	dt := now.Sub(s.updated)
	if dt <= 0 {
		return
	}

	s.updated = now

	delta := s.params.HeatingRateCPerHour * dt.Hours()

	if s.state == Charging {
		s.energyKWh += s.params.PowerKW * dt.Hours()
		s.chargingTime += dt
		s.temperatureC = clamp(s.temperatureC + delta)

		return
	}

	// Cool (or warm) towards ambient without overshooting.
	ambient := clamp(s.params.AmbientTemperatureC)

	switch {
	case s.temperatureC > ambient:
		s.temperatureC = math.Max(ambient, s.temperatureC-delta)
	case s.temperatureC < ambient:
		s.temperatureC = math.Min(ambient, s.temperatureC+delta)
	}
}

// State returns the current charging state.
func (s *Session) State() State {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.state
}

// Info returns the session telemetry as of now.
func (s *Session) Info() *openapi.SessionInfo {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.advance()

	power := 0.0

	if s.state == Charging {
		power = s.params.PowerKW
	}

	return &openapi.SessionInfo{
		EnergySessionKWh:    ptr.To(s.energyKWh),
		PowerSessionKW:      ptr.To(power),
		BatteryTemperatureC: ptr.To(s.temperatureC),
		ChargingTimeS:       ptr.To(int64(s.chargingTime / time.Second)),
	}
}

// transition moves to the new state, running enter under the same lock.
func (s *Session) transition(from []State, to State, enter func()) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.advance()

	for _, state := range from {
		if s.state == state {
			s.state = to

			if enter != nil {
				enter()
			}

			return nil
		}
	}

	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.state, to)
}

// Start begins a new session, resetting the counters.
func (s *Session) Start() error {
	return s.transition([]State{Idle}, Charging, func() {
		s.energyKWh = 0
		s.chargingTime = 0
	})
}

// Pause stops drawing power but keeps the session.
func (s *Session) Pause() error {
	return s.transition([]State{Charging}, Paused, nil)
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	return s.transition([]State{Paused}, Charging, nil)
}

// Stop ends the session. The last values remain readable until the next
// session starts.
func (s *Session) Stop() error {
	return s.transition([]State{Charging, Paused}, Idle, nil)
}
