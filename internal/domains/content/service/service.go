package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"campushub/infras/otel"
	"campushub/internal/domains/content/model"
	"campushub/shared/constant"
)

// Content serves the informational pages: the course catalog and the events
// board. Both are read-only seeded collections.
type Content interface {
	Courses(ctx context.Context) ([]model.Course, error)
	Events(ctx context.Context) ([]model.Event, error)
}

type serviceImpl struct {
	courses []model.Course
	events  []model.Event
	otel    otel.Otel
}

func New(ot otel.Otel) Content {
	return &serviceImpl{
		courses: model.DefaultCourses(),
		events:  model.DefaultEvents(),
		otel:    ot,
	}
}

func (s *serviceImpl) Courses(ctx context.Context) ([]model.Course, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Courses")
	defer scope.End()

	return s.courses, nil
}

func (s *serviceImpl) Events(ctx context.Context) ([]model.Event, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Events")
	defer scope.End()

	return s.events, nil
}
