package profile

import (
	"context"
	"fmt"

	"github.com/de-tools/livecost/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry exposes named counter presets, one INI section per profile:
//
//	[team-a]
//	account_count = 2
//	group_members = 3
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCounters(ctx context.Context, profile string) (domain.InputCounters, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetCounters returns the counters set in profile. Keys the profile leaves out
// are zero; fans_count is not required here.
func (r *iniRegistry) GetCounters(_ context.Context, profile string) (domain.InputCounters, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return domain.InputCounters{}, fmt.Errorf("profile %s not found", profile)
	}

	var counters domain.InputCounters
	for _, f := range domain.CounterFields {
		if !section.HasKey(string(f)) {
			continue
		}
		v, err := section.Key(string(f)).Int()
		if err != nil || v < 0 {
			return domain.InputCounters{}, fmt.Errorf("profile %s: %w",
				profile, &domain.FieldError{Field: f, Reason: "must be a non-negative whole number"})
		}
		*counters.Ref(f) = v
	}
	return counters, nil
}
