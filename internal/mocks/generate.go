// Package mocks provides mock implementations for testing the careers portal.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockApplicationRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(app, nil)
package mocks

// Generate mock for ApplicationRepository interface from internal/core package.
// This creates MockApplicationRepository with methods for all ApplicationRepository interface methods:
// Create, GetByID, List, ListByEmail, UpdateStatus, SetResumeFileName, Delete, CountByStatus, CountSince, Count
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=application_repository_mock.go github.com/sisunitech/careers-api/internal/core ApplicationRepository

// Generate mock for JobPositionRepository interface from internal/core package.
// This creates MockJobPositionRepository with methods for all JobPositionRepository interface methods:
// Create, GetByID, List, Update, Delete, CountActive
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_position_repository_mock.go github.com/sisunitech/careers-api/internal/core JobPositionRepository

// Generate mock for ContactRepository interface from internal/core package.
// This creates MockContactRepository with methods for all ContactRepository interface methods:
// Create, List, UpdateStatus, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=contact_repository_mock.go github.com/sisunitech/careers-api/internal/core ContactRepository

// Generate mock for ResumeStore interface from internal/core package.
// This creates MockResumeStore with methods for all ResumeStore interface methods:
// Save, Open, Remove
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=resume_store_mock.go github.com/sisunitech/careers-api/internal/core ResumeStore
