package storage

import (
	"time"

	"github.com/inkan-dev/inkan/internal/domain"
)

// branchModelToDomain converts a BranchModel (GORM) to domain.BranchContext
func branchModelToDomain(m BranchModel) (*domain.BranchContext, error) {
	created, err := time.Parse(time.RFC3339Nano, m.Created)
	if err != nil {
		return nil, domain.NewCorruptedError("branch.created", err)
	}

	return &domain.BranchContext{
		Created: created,
		Data:    m.Data,
		Link:    derefString(m.Link),
		Name:    m.Name,
		Scope:   derefString(m.Scope),
		Ticket:  m.Ticket,
	}, nil
}

// domainToBranchModel converts a domain.BranchContext to BranchModel (GORM)
func domainToBranchModel(b domain.BranchContext) BranchModel {
	return BranchModel{
		Created: b.Created.UTC().Format(time.RFC3339Nano),
		Data:    b.Data,
		Link:    optionalString(b.Link),
		Name:    b.Name,
		Scope:   optionalString(b.Scope),
		Ticket:  b.Ticket,
	}
}

// configModelToDomain converts a ConfigModel (GORM) to domain.NamedConfiguration
func configModelToDomain(m ConfigModel) (*domain.NamedConfiguration, error) {
	status, err := domain.ParseConfigStatus(m.Status)
	if err != nil {
		return nil, domain.NewCorruptedError("config.status", err)
	}

	return &domain.NamedConfiguration{
		Key:    domain.ParseConfigKey(m.Key),
		Path:   m.Path,
		Status: status,
	}, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
