package subscription

import (
	"errors"
	"strings"

	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

var ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan constructor")

// PlanParams are the catalog values of a subscription plan.
// Prices are in integer currency units.
type PlanParams struct {
	Code               string
	Name               string
	MonthlyPrice       int64
	YearlyMonthlyPrice int64
	PhotosPerMonth     int
	VideosPerMonth     int
	ExtraPhotoPrice    int64
	ExtraVideoPrice    int64
}

// Plan is a catalog entry: a base price per billing cycle, a monthly
// allowance of photos and videos, and the unit price of every item above it.
type Plan struct {
	code               string
	name               string
	monthlyPrice       int64
	yearlyMonthlyPrice int64
	photosPerMonth     int
	videosPerMonth     int
	extraPhotoPrice    int64
	extraVideoPrice    int64
	guard              guard.ConstructorGuard
}

func NewPlan(p PlanParams) (Plan, error) {
	plan := Plan{
		code:  strings.ToUpper(strings.TrimSpace(p.Code)),
		name:  strings.TrimSpace(p.Name),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireText("code", plan.code),
		requireText("name", plan.name),
		nonNegative("monthlyPrice", p.MonthlyPrice),
		nonNegative("yearlyMonthlyPrice", p.YearlyMonthlyPrice),
		nonNegative("photosPerMonth", int64(p.PhotosPerMonth)),
		nonNegative("videosPerMonth", int64(p.VideosPerMonth)),
		positive("extraPhotoPrice", p.ExtraPhotoPrice),
		positive("extraVideoPrice", p.ExtraVideoPrice),
	); err != nil {
		return Plan{}, err
	}

	plan.monthlyPrice = p.MonthlyPrice
	plan.yearlyMonthlyPrice = p.YearlyMonthlyPrice
	plan.photosPerMonth = p.PhotosPerMonth
	plan.videosPerMonth = p.VideosPerMonth
	plan.extraPhotoPrice = p.ExtraPhotoPrice
	plan.extraVideoPrice = p.ExtraVideoPrice
	return plan, nil
}

func (p Plan) Validate() error {
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

func (p Plan) Code() string              { return p.code }
func (p Plan) Name() string              { return p.name }
func (p Plan) MonthlyPrice() int64       { return p.monthlyPrice }
func (p Plan) YearlyMonthlyPrice() int64 { return p.yearlyMonthlyPrice }
func (p Plan) PhotosPerMonth() int       { return p.photosPerMonth }
func (p Plan) VideosPerMonth() int       { return p.videosPerMonth }
func (p Plan) ExtraPhotoPrice() int64    { return p.extraPhotoPrice }
func (p Plan) ExtraVideoPrice() int64    { return p.extraVideoPrice }

func requireText(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func nonNegative(name string, value int64) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	return nil
}

func positive(name string, value int64) error {
	if value <= 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 1, "unbounded")
	}
	return nil
}
