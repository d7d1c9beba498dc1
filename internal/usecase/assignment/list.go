package assignment

import (
	"context"

	domain "github.com/BruksfildServices01/shift-scheduler/internal/domain/assignment"
	"github.com/BruksfildServices01/shift-scheduler/internal/dto"
)

type ListAssignments struct {
	repo domain.Repository
}

func NewListAssignments(repo domain.Repository) *ListAssignments {
	return &ListAssignments{repo: repo}
}

// Execute returns every assignment. Records whose shift was deleted are
// kept with a nil Shift so managers can see them.
func (uc *ListAssignments) Execute(ctx context.Context) ([]dto.AssignmentDTO, error) {
	aps, err := uc.repo.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AssignmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, dto.NewAssignmentDTO(&aps[i]))
	}
	return out, nil
}
