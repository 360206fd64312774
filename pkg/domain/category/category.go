// Package category defines the validated payload for creating categories
// directly (outside the lazy creation a receipt save performs).
package category

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mhaefliger/grocery/pkg/domain"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Payload carries the fields for a new category. Categories form a tree via
// ParentID; a nil parent means top-level.
type Payload struct {
	Name     string
	ParentID *uint
	Icon     string
	Color    string
}

// Validate normalizes the payload in place. An empty color is valid and
// means "no color"; a non-empty one must be #RRGGBB.
func (p *Payload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Icon = strings.TrimSpace(p.Icon)
	p.Color = strings.TrimSpace(p.Color)

	if p.Name == "" {
		return fmt.Errorf("%w: category name cannot be empty", domain.ErrValidation)
	}
	if p.Color != "" && !hexColor.MatchString(p.Color) {
		return fmt.Errorf("%w: color must be a hex color code like #FF5733, got %q",
			domain.ErrValidation, p.Color)
	}
	return nil
}
