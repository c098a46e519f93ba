// Package theme derives the colour theme from the spending ratio.
package theme

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/workspace"
)

// RGB is one colour.
type RGB struct {
	R, G, B int
}

// String renders the colour as a CSS rgb() value.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Role pairs the calm colour with the colour shown at the limit.
type Role struct {
	Base   RGB
	Target RGB
}

// Palette roles. Base colours are the cream/brown scheme; targets drift to red.
var (
	Background = Role{Base: RGB{232, 209, 167}, Target: RGB{242, 184, 181}}
	Secondary  = Role{Base: RGB{68, 45, 28}, Target: RGB{92, 26, 26}}
	Accent     = Role{Base: RGB{132, 89, 43}, Target: RGB{192, 57, 43}}
	Text       = Role{Base: RGB{43, 27, 16}, Target: RGB{61, 12, 12}}
)

// Theme is the interpolated colour set.
type Theme struct {
	Background string  `json:"background"`
	Secondary  string  `json:"secondary"`
	Accent     string  `json:"accent"`
	Text       string  `json:"text"`
	Percentage float64 `json:"percentage"`
}

// Interpolate maps a spend percentage onto the palette with t = p/100,
// clamped to [0, 1].
func Interpolate(percentage float64) Theme {
	t := percentage / 100
	if t > 1 {
		t = 1
	}
	if t < 0 || math.IsNaN(t) {
		t = 0
	}

	return Theme{
		Background: Background.At(t).String(),
		Secondary:  Secondary.At(t).String(),
		Accent:     Accent.At(t).String(),
		Text:       Text.At(t).String(),
		Percentage: percentage,
	}
}

// At blends channel-wise from Base to Target.
func (r Role) At(t float64) RGB {
	return RGB{
		R: lerp(r.Base.R, r.Target.R, t),
		G: lerp(r.Base.G, r.Target.G, t),
		B: lerp(r.Base.B, r.Target.B, t),
	}
}

// lerp rounds half away from zero.
func lerp(from, to int, t float64) int {
	return int(math.Round(float64(from) + float64(to-from)*t))
}

// GetThemeInput represents the input for the theme lookup.
type GetThemeInput struct {
	OwnerID uuid.UUID
}

// GetThemeUseCase derives the theme from the global spending status.
type GetThemeUseCase struct {
	loader *workspace.Loader
	clock  adapter.Clock
}

// NewGetThemeUseCase creates a new GetThemeUseCase instance.
func NewGetThemeUseCase(loader *workspace.Loader, clock adapter.Clock) *GetThemeUseCase {
	return &GetThemeUseCase{
		loader: loader,
		clock:  clock,
	}
}

// Execute returns the theme for the owner's current limit percentage.
func (uc *GetThemeUseCase) Execute(ctx context.Context, input GetThemeInput) (*Theme, error) {
	ws, err := uc.loader.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	status := budget.SpendingStatus(ws.Expenses, ws.Limit, uc.clock.Now())
	theme := Interpolate(status.Percentage)
	return &theme, nil
}
