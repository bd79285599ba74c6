// Package mocks provides mock implementations for testing the careers hub services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// port interfaces in internal/core. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockHistoryRepository(ctrl)
//	mockRepo.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(record, nil)
package mocks

// Generate mock for RunDispatcher interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=run_dispatcher_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core RunDispatcher

// Generate mock for RunStatusFetcher interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=run_status_fetcher_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core RunStatusFetcher

// Generate mock for RunStateStore interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=run_state_store_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core RunStateStore

// Generate mock for HistoryRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=history_repository_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core HistoryRepository

// Generate mock for UserRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core UserRepository

// Generate mock for AgentExecutor interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=agent_executor_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core AgentExecutor

// Generate mock for MediaUploader interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=media_uploader_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core MediaUploader

// Generate mock for ResumeTextExtractor interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=resume_text_extractor_mock.go github.com/APVS-BRO/ai-careers-hub/internal/core ResumeTextExtractor
