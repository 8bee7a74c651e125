package component

import (
	"fmt"
	"image/color"

	"go-alien-invasion/internal/config"
)

// ShieldStatus — одно из четырёх состояний, которые показывает HUD.
type ShieldStatus int

const (
	ShieldReady    ShieldStatus = iota // есть заряды, перезарядки нет
	ShieldActive                       // щит поднят
	ShieldCharging                     // есть заряды, идёт перезарядка
	ShieldDepleted                     // зарядов нет
)

func (s ShieldStatus) String() string {
	switch s {
	case ShieldActive:
		return "active"
	case ShieldCharging:
		return "charging"
	case ShieldReady:
		return "ready"
	case ShieldDepleted:
		return "depleted"
	}
	return fmt.Sprintf("ShieldStatus(%d)", int(s))
}

// Shield is a timed defensive ability with a limited number of charges.
// A spent charge comes back after a full cooldown; charges regenerate
// one per cooldown period, never all at once.
type Shield struct {
	Active        bool
	TimeRemaining float64 // seconds left while active
	Cooldown      float64 // seconds until the next charge returns
	Charges       int

	Duration         float64
	CooldownDuration float64
	MaxCharges       int

	// Visuals
	Color          color.RGBA
	Width          int
	RadiusIncrease int
}

// NewShield создаёт щит с полным запасом зарядов.
func NewShield(cfg *config.ShieldConfig) *Shield {
	s := &Shield{}
	s.ApplyTuning(cfg)
	s.Reset()
	return s
}

// ApplyTuning переносит параметры из конфига, не сбрасывая текущее состояние.
// Заряды и таймеры подрезаются так, чтобы инварианты сохранились.
func (s *Shield) ApplyTuning(cfg *config.ShieldConfig) {
	s.Duration = cfg.Duration
	s.CooldownDuration = cfg.CooldownDuration
	s.MaxCharges = cfg.MaxCharges
	s.Color = cfg.RGBA()
	s.Width = cfg.Width
	s.RadiusIncrease = cfg.RadiusIncrease

	if s.Charges > s.MaxCharges {
		s.Charges = s.MaxCharges
	}
	switch {
	case s.Charges == s.MaxCharges:
		s.Cooldown = 0
	case s.Cooldown > s.CooldownDuration:
		s.Cooldown = s.CooldownDuration
	case !s.Active && s.Cooldown <= 0:
		// максимум вырос: недостающий заряд тоже должен восстановиться
		s.Cooldown = s.CooldownDuration
	}
	if s.Active && s.TimeRemaining > s.Duration {
		s.TimeRemaining = s.Duration
	}
}

// CanActivate reports whether Activate would succeed.
func (s *Shield) CanActivate() bool {
	return !s.Active && s.Cooldown <= 0 && s.Charges > 0
}

// Activate raises the shield and spends a charge. It returns false and
// leaves the shield untouched when it is already up, cooling down, or empty.
func (s *Shield) Activate() bool {
	if !s.CanActivate() {
		return false
	}
	s.Active = true
	s.TimeRemaining = s.Duration
	s.Charges--
	return true
}

// Update advances the timers by dt seconds.
func (s *Shield) Update(dt float64) {
	if dt <= 0 {
		return
	}

	if s.Active {
		s.TimeRemaining -= dt
		if s.TimeRemaining <= 0 {
			s.Active = false
			s.TimeRemaining = 0
			// максимум мог уменьшиться, пока щит был поднят
			if s.Charges < s.MaxCharges {
				s.Cooldown = s.CooldownDuration
			}
			// перезарядка начинается со следующего кадра
			return
		}
	}

	if s.Cooldown > 0 {
		s.Cooldown -= dt
		if s.Cooldown <= 0 {
			s.Cooldown = 0
			if s.Charges < s.MaxCharges {
				s.Charges++
				if s.Charges < s.MaxCharges {
					s.Cooldown = s.CooldownDuration
				}
			}
		}
	}
}

// Reset возвращает щит в начальное состояние (перезапуск игры).
func (s *Shield) Reset() {
	s.Active = false
	s.TimeRemaining = 0
	s.Cooldown = 0
	s.Charges = s.MaxCharges
}

// Status classifies the current state into one of the four HUD branches.
func (s *Shield) Status() ShieldStatus {
	switch {
	case s.Active:
		return ShieldActive
	case s.Charges > 0 && s.Cooldown > 0:
		return ShieldCharging
	case s.Charges > 0:
		return ShieldReady
	default:
		return ShieldDepleted
	}
}

// StatusText returns the HUD line for the shield.
func (s *Shield) StatusText() string {
	switch s.Status() {
	case ShieldActive:
		return fmt.Sprintf("SHIELD: %.1fs", s.TimeRemaining)
	case ShieldCharging:
		return fmt.Sprintf("SHIELD: %d (CD: %.1fs)", s.Charges, s.Cooldown)
	case ShieldReady:
		return fmt.Sprintf("SHIELD: %d (Press 1)", s.Charges)
	default:
		return fmt.Sprintf("SHIELD: 0 (CD: %.1fs)", s.Cooldown)
	}
}

// StatusColor returns the HUD colour matching StatusText.
func (s *Shield) StatusColor() color.RGBA {
	switch s.Status() {
	case ShieldActive:
		return config.ShieldActiveColor
	case ShieldCharging:
		return config.ShieldChargingColor
	case ShieldReady:
		return config.ShieldReadyColor
	default:
		return config.ShieldDepletedColor
	}
}
