package service

import (
	"context"
	"fmt"

	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/repository"
)

// AddStudent adds a student, or returns the existing one unchanged.
func (s *CampusService) AddStudent(ctx context.Context, req model.CreateStudentRequest) (model.Student, bool, error) {
	if blank(req.ID) {
		return model.Student{}, false, fmt.Errorf("%w: student id is required", ErrValidation)
	}
	st, created := s.store.AddStudent(req.ID, req.Name)
	if created {
		s.logger(ctx).Info("student added", "studentID", st.ID)
	}
	return st, created, nil
}

// ListStudents returns all students.
func (s *CampusService) ListStudents(_ context.Context) []model.Student {
	return s.store.ListStudents()
}

// GetStudent returns a roster summary of one student.
func (s *CampusService) GetStudent(_ context.Context, id string) (model.StudentSummary, error) {
	sum, ok := s.store.StudentSummary(id)
	if !ok {
		return model.StudentSummary{}, repository.ErrNotFound
	}
	return sum, nil
}
