package core

import (
	"fmt"
	"strings"
)

// Projectile is the kind of shot a piece fires. Each kind resolves
// differently against the piece it strikes.
type Projectile uint8

const (
	Rock Projectile = iota
	Fire
	Water
	Root
	Shield
	Stun
	Heal
)

var projectileNames = [...]string{"ROCK", "FIRE", "WATER", "ROOT", "SHIELD", "STUN", "HEAL"}

// String returns the upper-case projectile name.
func (p Projectile) String() string {
	if int(p) >= len(projectileNames) {
		return "UNKNOWN"
	}
	return projectileNames[p]
}

// Projectiles returns every projectile kind in declaration order.
func Projectiles() []Projectile {
	return []Projectile{Rock, Fire, Water, Root, Shield, Stun, Heal}
}

// ParseProjectile parses a projectile name, case-insensitively.
func ParseProjectile(s string) (Projectile, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range projectileNames {
		if n == name {
			return Projectile(i), nil
		}
	}
	return 0, fmt.Errorf("unknown projectile %q", s)
}
