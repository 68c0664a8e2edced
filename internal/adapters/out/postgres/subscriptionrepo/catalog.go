package subscriptionrepo

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed plans.yaml
var defaultCatalog []byte

type catalogFile struct {
	Plans []PlanDTO `yaml:"plans"`
}

// ParseCatalog decodes a plan catalog and checks every plan against the
// domain rules.
func ParseCatalog(data []byte) ([]PlanDTO, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("subscriptionrepo: parsing plan catalog: %w", err)
	}
	if len(file.Plans) == 0 {
		return nil, errors.New("subscriptionrepo: plan catalog is empty")
	}

	seen := make(map[string]bool, len(file.Plans))
	var planErrs []error
	for i, dto := range file.Plans {
		plan, err := planToDomain(dto)
		if err != nil {
			planErrs = append(planErrs, fmt.Errorf("plan %q: %w", dto.Code, err))
			continue
		}
		if seen[plan.Code()] {
			planErrs = append(planErrs, fmt.Errorf("plan %q is listed twice", plan.Code()))
		}
		seen[plan.Code()] = true
		file.Plans[i].Code = plan.Code()
	}
	if err := errors.Join(planErrs...); err != nil {
		return nil, err
	}

	return file.Plans, nil
}

// SeedPlans upserts the embedded catalog. Existing plans take the catalog
// prices; plans missing from the catalog are left alone.
func SeedPlans(ctx context.Context, db *gorm.DB) (int, error) {
	plans, err := ParseCatalog(defaultCatalog)
	if err != nil {
		return 0, err
	}

	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&plans).Error
	if err != nil {
		return 0, err
	}

	return len(plans), nil
}
